package markdown

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/haakusi/momentum/internal/domain"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapseRe = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a book title to a file-safe slug: punctuation stripped,
// whitespace and hyphen runs collapsed to a single hyphen, lowercased.
func Slugify(title string) string {
	slug := slugStripRe.ReplaceAllString(title, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.ToLower(strings.Trim(slug, "-"))
}

// WriteBook appends the day's reading note to books/{slug}.md, creating the
// file with its heading on first sight of the title. A submission without a
// note still creates the file.
func (w *Writer) WriteBook(date time.Time, reading domain.Reading) error {
	if reading.Title == "" {
		return nil
	}

	dir := w.join("books")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create books directory: %w", err)
	}
	path := w.join("books", Slugify(reading.Title)+".md")

	content, err := readOr(path, fmt.Sprintf("# %s\n\n## 📖 독서 기록\n\n", reading.Title))
	if err != nil {
		return err
	}

	if reading.Note != "" {
		content += fmt.Sprintf("### %s\n%s\n\n", date.Format(domain.DateLayout), reading.Note)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write book log: %w", err)
	}
	return nil
}
