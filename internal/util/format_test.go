package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0h", FormatMinutes(0))
	assert.Equal(t, "0h", FormatMinutes(-5))
	assert.Equal(t, "0h 45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "3h", FormatMinutes(180))
}

func TestAchievementRate(t *testing.T) {
	assert.Equal(t, 0, AchievementRate(3, 0))
	assert.Equal(t, 100, AchievementRate(3, 3))
	assert.Equal(t, 66, AchievementRate(2, 3))
	assert.Equal(t, 150, AchievementRate(6, 4))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░", ProgressBar(0, 5, 5))
	assert.Equal(t, "▰▰▰▰▰", ProgressBar(5, 5, 5))
	assert.Equal(t, "▰▰░░░", ProgressBar(2, 5, 5))
	assert.Equal(t, "▰▰▰▰▰", ProgressBar(10, 5, 5)) // over-achievement caps the bar
	assert.Equal(t, "░░░░░", ProgressBar(3, 0, 5))
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 111: "111th", 101: "101st",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, "short", Clamp("short", 10))
	assert.Equal(t, "ab…", Clamp("abcdef", 3))
	// Rune-aware: multi-byte text must not be cut mid-character.
	assert.Equal(t, "양자 컴퓨…", Clamp("양자 컴퓨팅 입문", 6))
}
