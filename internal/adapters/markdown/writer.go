// Package markdown renders the weekly, book, and dashboard artifacts.
package markdown

import "path/filepath"

// Writer renders markdown artifacts under a root directory: weekly logs in
// logs/{year}/{month}/, book logs in books/, and the README dashboard at the
// root.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir}
}

func (w *Writer) join(parts ...string) string {
	return filepath.Join(append([]string{w.root}, parts...)...)
}
