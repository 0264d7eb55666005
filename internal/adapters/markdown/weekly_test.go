package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haakusi/momentum/internal/domain"
)

func TestWriter_WriteWeekly(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	date := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC) // Saturday, ISO week 51

	entry := domain.ExtractEntry("💪 1h - squats\n📚 Dune - spice")
	require.NoError(t, w.WriteWeekly(date, entry))

	path := filepath.Join(root, "logs", "2025", "12", "week-51.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Week 51 - 2025.12")
	assert.Contains(t, content, "## 2025-12-20 (Saturday)")
	assert.Contains(t, content, "💪 **헬스**: 1h - squats")
	assert.Contains(t, content, "📚 **독서**: Dune - spice")
	// Zero-minute categories are left out of the section.
	assert.NotContains(t, content, "🗣️")
}

func TestWriter_WriteWeekly_ResubmissionReplacesSection(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	date := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, w.WriteWeekly(date, domain.ExtractEntry("💪 1h")))
	require.NoError(t, w.WriteWeekly(date, domain.ExtractEntry("💪 2h - run")))

	data, err := os.ReadFile(filepath.Join(root, "logs", "2025", "12", "week-51.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Equal(t, 1, strings.Count(content, "## 2025-12-20"))
	assert.Contains(t, content, "2h - run")
	assert.NotContains(t, content, "**헬스**: 1h")
}

func TestWriter_WriteWeekly_MultipleDaysAccumulate(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	require.NoError(t, w.WriteWeekly(time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), domain.ExtractEntry("💪 1h")))
	require.NoError(t, w.WriteWeekly(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), domain.ExtractEntry("🔬 2h")))

	data, err := os.ReadFile(filepath.Join(root, "logs", "2025", "12", "week-51.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "## 2025-12-19 (Friday)")
	assert.Contains(t, content, "## 2025-12-20 (Saturday)")
}

func TestRemoveDaySection(t *testing.T) {
	content := "# Week 51\n\n## 2025-12-19 (Friday)\n\nstuff\n\n## 2025-12-20 (Saturday)\n\nmore\n"

	t.Run("middle section", func(t *testing.T) {
		got := removeDaySection(content, "2025-12-19")
		assert.NotContains(t, got, "2025-12-19")
		assert.Contains(t, got, "## 2025-12-20")
	})

	t.Run("trailing section", func(t *testing.T) {
		got := removeDaySection(content, "2025-12-20")
		assert.Contains(t, got, "## 2025-12-19")
		assert.NotContains(t, got, "2025-12-20")
	})

	t.Run("absent date is a no-op", func(t *testing.T) {
		assert.Equal(t, content, removeDaySection(content, "2025-12-21"))
	})
}
