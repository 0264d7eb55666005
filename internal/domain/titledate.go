package domain

import (
	"regexp"
	"strconv"
	"time"
)

var (
	fullDateRe  = regexp.MustCompile(`(\d{4})[-./ ](\d{1,2})[-./ ](\d{1,2})`)
	shortDateRe = regexp.MustCompile(`(\d{1,2})[-./ ](\d{1,2})`)
)

// ResolveDate extracts a calendar date from a submission title. Titles may
// carry a full date ("2025-12-20"; dots, slashes, and spaces also separate)
// or a month-day pair that borrows the fallback's year. A match that is not
// a valid calendar date falls through to the next pattern; when nothing
// matches, the fallback is returned unchanged. Parsed dates are midnight in
// the fallback's location.
func ResolveDate(title string, fallback time.Time) time.Time {
	if m := fullDateRe.FindStringSubmatch(title); m != nil {
		if d, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), fallback.Location()); ok {
			return d
		}
	}
	if m := shortDateRe.FindStringSubmatch(title); m != nil {
		if d, ok := makeDate(fallback.Year(), atoi(m[1]), atoi(m[2]), fallback.Location()); ok {
			return d
		}
	}
	return fallback
}

// makeDate rejects values time.Date would silently normalize (month 13,
// day 32, Feb 30).
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
