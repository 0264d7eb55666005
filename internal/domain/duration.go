package domain

import (
	"math"
	"regexp"
	"strconv"
)

var (
	decimalHourRe = regexp.MustCompile(`(\d+\.?\d*)h`)
	hourRe        = regexp.MustCompile(`(\d+)\s*(?:h|시간)`)
	minuteRe      = regexp.MustCompile(`(\d+)\s*(?:m|분)`)
)

// ParseDuration converts a free-text duration fragment to minutes.
// Recognized forms: "1h", "1.5h", "2시간", "30m", "45분", "1시간 30분".
// A decimal-hour token wins outright; hour and minute tokens combine
// additively. Unrecognized input counts as zero.
func ParseDuration(text string) int {
	if text == "" {
		return 0
	}

	if m := decimalHourRe.FindStringSubmatch(text); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(hours * 60))
		}
	}

	minutes := 0
	if m := hourRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes += hours * 60
	}
	if m := minuteRe.FindStringSubmatch(text); m != nil {
		mins, _ := strconv.Atoi(m[1])
		minutes += mins
	}
	return minutes
}
