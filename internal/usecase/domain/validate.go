package domain

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"workio/internal/entities"
	"workio/internal/listing"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func required(v *entities.ValidationError, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, msg)
	}
}

func validEmail(v *entities.ValidationError, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "Email is required")
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !emailPattern.MatchString(value) {
		v.Add(field, "Email format is invalid")
	}
}

// cleanNames trims names, drops blanks and reports whether any name repeats.
func cleanNames(in []string) ([]string, bool) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	dup := false
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			dup = true
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out, dup
}

// sameDayOrAfter reports whether t falls on day or later, comparing calendar dates.
func sameDayOrAfter(t, day time.Time) bool {
	ty, tm, td := t.Date()
	dy, dm, dd := day.In(t.Location()).Date()
	return !time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Before(time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func normalize(q listing.Query, size int) listing.Query {
	return q.Normalize(size)
}
