// Package format renders money and dates the way the dashboard displays them.
package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DateLayout is the short display layout, e.g. "12 Jan 2024".
	DateLayout = "02 Jan 2006"
	// DateTimeLayout is used for audit timestamps.
	DateTimeLayout = "02 Jan 2006 15:04"
	// ISODate is the wire format of calendar dates.
	ISODate = "2006-01-02"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount as Indonesian Rupiah without decimals.
func Rupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -amount)
	}
	return "Rp " + idPrinter.Sprintf("%d", amount)
}

// RupiahString keeps only the digits of s and formats them as Rupiah.
// Input without digits renders as "Rp 0".
func RupiahString(s string) string {
	n, ok := Amount(s)
	if !ok {
		return "Rp 0"
	}
	return Rupiah(n)
}

// Amount parses the digits of s, ignoring currency symbols and grouping.
func Amount(s string) (int64, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SignedAmount is Amount keeping a minus sign written before the first
// digit, as in "-5000" or "-Rp 5.000".
func SignedAmount(s string) (int64, bool) {
	n, ok := Amount(s)
	if !ok {
		return 0, false
	}
	if i := strings.IndexAny(s, "0123456789"); strings.Contains(s[:i], "-") {
		n = -n
	}
	return n, true
}

// Date renders an ISO date (or RFC3339 timestamp) as "02 Jan 2006".
// Unparsable input is returned unchanged.
func Date(s string) string {
	t, ok := parse(s)
	if !ok {
		return s
	}
	return t.Format(DateLayout)
}

// DateTime renders a timestamp as "02 Jan 2006 15:04".
func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate accepts an ISO date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	return parse(strings.TrimSpace(s))
}

func parse(s string) (time.Time, bool) {
	for _, layout := range []string{ISODate, time.RFC3339, "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
