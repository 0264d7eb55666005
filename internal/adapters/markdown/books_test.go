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

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Quantum Computing":       "quantum-computing",
		"Dune":                    "dune",
		"Ch. 3: Gates & Circuits": "ch-3-gates-circuits",
		"양자 컴퓨팅 입문":               "양자-컴퓨팅-입문",
		"already-slugged":         "already-slugged",
	}
	for title, want := range tests {
		assert.Equal(t, want, Slugify(title), "Slugify(%q)", title)
	}
}

func TestWriter_WriteBook(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	reading := domain.Reading{Title: "Quantum Computing", Note: "Ch.3"}
	require.NoError(t, w.WriteBook(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), reading))

	data, err := os.ReadFile(filepath.Join(root, "books", "quantum-computing.md"))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# Quantum Computing\n"))
	assert.Contains(t, content, "### 2025-12-20\nCh.3")
}

func TestWriter_WriteBook_NotesAccumulate(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	require.NoError(t, w.WriteBook(time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), domain.Reading{Title: "Dune", Note: "spice"}))
	require.NoError(t, w.WriteBook(time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC), domain.Reading{Title: "Dune", Note: "worms"}))

	data, err := os.ReadFile(filepath.Join(root, "books", "dune.md"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "### 2025-12-19\nspice")
	assert.Contains(t, content, "### 2025-12-21\nworms")
}

func TestWriter_WriteBook_NoTitleIsNoOp(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	require.NoError(t, w.WriteBook(time.Now(), domain.Reading{}))

	_, err := os.Stat(filepath.Join(root, "books"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_WriteBook_NoNoteStillCreatesFile(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	require.NoError(t, w.WriteBook(time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), domain.Reading{Title: "Dune"}))

	data, err := os.ReadFile(filepath.Join(root, "books", "dune.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Dune")
	assert.NotContains(t, string(data), "### ")
}
