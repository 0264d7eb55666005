package util

import (
	"fmt"
	"strings"
)

// FormatMinutes formats a minute count the way the logs display durations.
// Examples: 0 -> "0h", 45 -> "0h 45m", 60 -> "1h", 90 -> "1h 30m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0h"
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// AchievementRate returns actual/target as a truncated percentage.
// A non-positive target yields 0.
func AchievementRate(actual, target int) int {
	if target <= 0 {
		return 0
	}
	return actual * 100 / target
}

// ProgressBar renders a fixed-width bar of filled and empty cells.
func ProgressBar(count, target, width int) string {
	if target <= 0 {
		return strings.Repeat("░", width)
	}
	filled := count * width / target
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("▰", filled) + strings.Repeat("░", width-filled)
}

// Ordinal formats n as an English ordinal: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Clamp shortens s to at most max runes, ending with an ellipsis, to keep
// README lines from scrolling horizontally.
func Clamp(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
