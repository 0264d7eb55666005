package markdown

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haakusi/momentum/internal/domain"
	"github.com/haakusi/momentum/internal/util"
)

// WriteWeekly upserts the day's section in logs/{year}/{month}/week-{n}.md.
// An existing section for the same date is removed before the fresh one is
// appended, so resubmitting a date rewrites its section instead of
// duplicating it.
func (w *Writer) WriteWeekly(date time.Time, entry domain.Entry) error {
	_, week := date.ISOWeek()
	dir := w.join("logs", fmt.Sprintf("%d", date.Year()), fmt.Sprintf("%02d", int(date.Month())))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("week-%d.md", week))

	content, err := readOr(path, fmt.Sprintf("# Week %d - %d.%02d\n\n", week, date.Year(), int(date.Month())))
	if err != nil {
		return err
	}

	dateStr := date.Format(domain.DateLayout)
	content = removeDaySection(content, dateStr)
	content += daySection(date, entry)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write weekly log: %w", err)
	}
	return nil
}

func readOr(path, fallback string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// removeDaySection cuts the "## {date} ..." section, up to the next "## "
// heading or end of file.
func removeDaySection(content, dateStr string) string {
	idx := strings.Index(content, "## "+dateStr)
	if idx == -1 {
		return content
	}
	rest := content[idx:]
	if next := strings.Index(rest, "\n## "); next != -1 {
		return content[:idx] + rest[next+1:]
	}
	return content[:idx]
}

func daySection(date time.Time, entry domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n## %s (%s)\n\n", date.Format(domain.DateLayout), date.Weekday())

	for _, c := range domain.Categories {
		activity := entry.Activities[c]
		if activity.Minutes <= 0 {
			continue
		}
		fmt.Fprintf(&b, "%s **%s**: %s", c.Marker(), c.Label(), util.FormatMinutes(activity.Minutes))
		if activity.Note != "" {
			fmt.Fprintf(&b, " - %s", activity.Note)
		}
		b.WriteByte('\n')
	}

	if entry.Reading.Title != "" {
		fmt.Fprintf(&b, "📚 **독서**: %s", entry.Reading.Title)
		if entry.Reading.Note != "" {
			fmt.Fprintf(&b, " - %s", entry.Reading.Note)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
