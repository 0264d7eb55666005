package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntry(t *testing.T) {
	t.Run("full submission", func(t *testing.T) {
		body := "💪 1.5h\n🗣️ 45m\n🔬 3h - circuit experiment\n📚 Quantum Computing - Ch.3"
		entry := ExtractEntry(body)

		assert.Equal(t, Activity{Minutes: 90}, entry.Activities[CategoryFitness])
		assert.Equal(t, Activity{Minutes: 45}, entry.Activities[CategoryEnglish])
		assert.Equal(t, Activity{Minutes: 180, Note: "circuit experiment"}, entry.Activities[CategoryResearch])
		assert.Equal(t, Reading{Title: "Quantum Computing", Note: "Ch.3"}, entry.Reading)
	})

	t.Run("last match wins per category", func(t *testing.T) {
		entry := ExtractEntry("💪 1h\n💪 2h - run")
		assert.Equal(t, Activity{Minutes: 120, Note: "run"}, entry.Activities[CategoryFitness])
	})

	t.Run("headings and code fences are ignored", func(t *testing.T) {
		body := "# 💪 heading with marker\n```\n💪 9h inside fence delimiter line\n🗣️ 30m"
		entry := ExtractEntry(body)
		// The fence delimiter line is skipped; the line inside the fence is
		// still a plain line and counts.
		assert.Equal(t, 540, entry.Activities[CategoryFitness].Minutes)
		assert.Equal(t, 30, entry.Activities[CategoryEnglish].Minutes)
	})

	t.Run("heading-only marker never lands", func(t *testing.T) {
		entry := ExtractEntry("# 💪 1h\n``` 🔬 2h")
		assert.Equal(t, 0, entry.Activities[CategoryFitness].Minutes)
		assert.Equal(t, 0, entry.Activities[CategoryResearch].Minutes)
	})

	t.Run("one category per line", func(t *testing.T) {
		entry := ExtractEntry("💪 1h 🗣️ 30m")
		// Fitness wins the dispatch; the trailing english marker is just
		// text in the fitness remainder.
		assert.Equal(t, 60, entry.Activities[CategoryFitness].Minutes)
		assert.Equal(t, 0, entry.Activities[CategoryEnglish].Minutes)
	})

	t.Run("english marker without variation selector", func(t *testing.T) {
		entry := ExtractEntry("\U0001F5E3 20m - shadowing")
		assert.Equal(t, Activity{Minutes: 20, Note: "shadowing"}, entry.Activities[CategoryEnglish])
	})

	t.Run("reading without note", func(t *testing.T) {
		entry := ExtractEntry("📚 Dune")
		assert.Equal(t, Reading{Title: "Dune"}, entry.Reading)
	})

	t.Run("all categories present on empty body", func(t *testing.T) {
		entry := ExtractEntry("")
		require.Len(t, entry.Activities, 3)
		for _, c := range Categories {
			assert.Equal(t, Activity{}, entry.Activities[c])
		}
		assert.Empty(t, entry.Reading.Title)
	})

	t.Run("unparseable duration keeps the note", func(t *testing.T) {
		entry := ExtractEntry("🔬 a while - still showed up")
		assert.Equal(t, Activity{Minutes: 0, Note: "still showed up"}, entry.Activities[CategoryResearch])
	})
}
