package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRupiah(t *testing.T) {
	require.Equal(t, "Rp 50.000", Rupiah(50000))
	require.Equal(t, "Rp 0", Rupiah(0))
	require.Equal(t, "Rp 1.250.000", Rupiah(1250000))
}

func TestRupiahString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "75000", want: "Rp 75.000"},
		{in: "Rp 1.500", want: "Rp 1.500"},
		{in: "abc", want: "Rp 0"},
		{in: "", want: "Rp 0"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RupiahString(tt.in), tt.in)
	}
}

func TestDate(t *testing.T) {
	require.Equal(t, "12 Jan 2024", Date("2024-01-12"))
	require.Equal(t, "01 Oct 2025", Date("2025-10-01T10:00:00Z"))
	require.Equal(t, "not a date", Date("not a date"))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2025, 9, 12, 8, 15, 0, 0, time.UTC)
	require.Equal(t, "12 Sep 2025 08:15", DateTime(ts))
}

func TestAmount(t *testing.T) {
	n, ok := Amount("Rp 50.000")
	require.True(t, ok)
	require.Equal(t, int64(50000), n)

	_, ok = Amount("free")
	require.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate(" 2024-09-28 ")
	require.True(t, ok)
	require.Equal(t, time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("28/09/2024")
	require.False(t, ok)
}

func TestSignedAmount(t *testing.T) {
	for in, want := range map[string]int64{
		"-5000":     -5000,
		"-Rp 5.000": -5000,
		"Rp 5.000":  5000,
		"Rp 5.000-": 5000,
		" 12.500 ":  12500,
	} {
		n, ok := SignedAmount(in)
		require.True(t, ok, in)
		require.Equal(t, want, n, in)
	}

	_, ok := SignedAmount("-")
	require.False(t, ok)
}
