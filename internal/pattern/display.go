package pattern

import (
	"strings"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/dates"
)

// namedColors maps common color names to their hex equivalents. Unrecognized
// names pass through unchanged.
var namedColors = map[string]string{
	"red":    "#EF4444",
	"orange": "#F97316",
	"yellow": "#F59E0B",
	"green":  "#10B981",
	"teal":   "#14B8A6",
	"cyan":   "#06B6D4",
	"blue":   "#3B82F6",
	"indigo": "#6366F1",
	"purple": "#8B5CF6",
	"pink":   "#EC4899",
	"gray":   "#6B7280",
	"grey":   "#6B7280",
	"black":  "#000000",
	"white":  "#FFFFFF",
}

// priorityLabels are the fixed display strings for known priority values.
var priorityLabels = map[string]string{
	"critical": "Critical Priority",
	"urgent":   "Urgent Priority",
	"high":     "High Priority",
	"medium":   "Medium Priority",
	"low":      "Low Priority",
}

func displayFor(typ Type, value string) string {
	switch typ {
	case TypeDate:
		return DisplayDate(value)
	case TypePriority:
		return DisplayPriority(value)
	case TypeColor:
		return DisplayColor(value)
	case TypeAssignee:
		return "@" + value
	default:
		return value
	}
}

// DisplayDate renders a date token for display: weekday names are
// re-capitalized, resolvable dates use relative wording, anything else falls
// back to the raw token.
func DisplayDate(value string) string {
	if dates.IsWeekdayName(value) {
		return dates.Capitalize(value)
	}
	if t, ok := dates.Resolve(value); ok {
		return dates.FormatRelative(t)
	}
	return value
}

// DisplayPriority maps known priorities to their labels, falling back to the
// capitalized input.
func DisplayPriority(value string) string {
	if label, ok := priorityLabels[strings.ToLower(value)]; ok {
		return label
	}
	return dates.Capitalize(value)
}

// DisplayColor normalizes a color token: hex values are upper-cased, rgb()
// values pass through untouched, known names map to hex.
func DisplayColor(value string) string {
	if strings.HasPrefix(value, "#") {
		return strings.ToUpper(value)
	}
	if strings.HasPrefix(value, "rgb(") {
		return value
	}
	if hex, ok := namedColors[strings.ToLower(value)]; ok {
		return hex
	}
	return value
}
