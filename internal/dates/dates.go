// Package dates resolves the fixed date-token vocabulary used by embedded
// patterns: today/tomorrow/yesterday, full weekday names, and a small set of
// literal date layouts.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const daysPerWeek = 7

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// layouts tried in order for literal date tokens.
var layouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// Resolve maps a date token to a concrete date. Matching is case-insensitive.
// Weekday names resolve to the next occurrence; if the token names today's
// weekday the result is seven days ahead, never today. The second return is
// false when the token is not a recognizable date.
func Resolve(token string) (time.Time, bool) {
	return resolveAt(token, time.Now())
}

// resolveAt is Resolve with an injectable clock.
func resolveAt(token string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(token))
	if lower == "" {
		return time.Time{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch lower {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	if wd, ok := weekdays[lower]; ok {
		delta := (int(wd) - int(today.Weekday()) + daysPerWeek) % daysPerWeek
		if delta == 0 {
			delta = daysPerWeek
		}
		return today.AddDate(0, 0, delta), true
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsWeekdayName reports whether the token names a weekday (case-insensitive).
func IsWeekdayName(token string) bool {
	_, ok := weekdays[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// FormatRelative renders a resolved date for display. Dates within a week of
// now use relative wording; anything further away falls back to a short
// locale-style date.
func FormatRelative(t time.Time) string {
	return formatRelativeAt(t, time.Now())
}

func formatRelativeAt(t, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	days := int(target.Sub(today).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1 && days < daysPerWeek:
		return fmt.Sprintf("In %d days", days)
	case days < -1 && days > -daysPerWeek:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return t.Format("1/2/2006")
	}
}

// Capitalize upper-cases the first letter of a token, used to redisplay
// weekday-name inputs.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
