package domain

import "strings"

// Activity is one category's parsed result for a single submission.
type Activity struct {
	Minutes int
	Note    string
}

// Reading is the parsed book line of a submission.
type Reading struct {
	Title string
	Note  string
}

// Entry is the structured result of one submission body. Activities always
// carries all three categories, zero-valued when never matched.
type Entry struct {
	Activities map[Category]Activity
	Reading    Reading
}

// NewEntry returns an empty entry with every activity category present.
func NewEntry() Entry {
	return Entry{Activities: map[Category]Activity{
		CategoryFitness:  {},
		CategoryEnglish:  {},
		CategoryResearch: {},
	}}
}

// ExtractEntry scans a multi-line submission body for marker-prefixed lines.
// Blank lines, markdown headings, and code-fence delimiters are skipped even
// when they contain a marker glyph. Each remaining line sets at most one
// category, dispatched in marker-priority order; a later line for the same
// category overwrites the earlier one.
func ExtractEntry(body string) Entry {
	entry := NewEntry()

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}

		if rest, ok := afterMarker(line, markerFitness); ok {
			entry.Activities[CategoryFitness] = parseActivity(rest)
		} else if rest, ok := afterMarker(line, markerEnglish, markerEnglish2); ok {
			entry.Activities[CategoryEnglish] = parseActivity(rest)
		} else if rest, ok := afterMarker(line, markerResearch); ok {
			entry.Activities[CategoryResearch] = parseActivity(rest)
		} else if rest, ok := afterMarker(line, markerReading); ok {
			entry.Reading = parseReading(rest)
		}
	}
	return entry
}

func afterMarker(line string, glyphs ...string) (string, bool) {
	for _, glyph := range glyphs {
		if _, rest, found := strings.Cut(line, glyph); found {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// parseActivity splits "1.5h - note" on the first dash: duration before,
// free-text note after. A missing dash means the whole rest is the duration.
func parseActivity(rest string) Activity {
	timePart, note, found := strings.Cut(rest, "-")
	activity := Activity{Minutes: ParseDuration(strings.TrimSpace(timePart))}
	if found {
		activity.Note = strings.TrimSpace(note)
	}
	return activity
}

func parseReading(rest string) Reading {
	title, note, found := strings.Cut(rest, "-")
	reading := Reading{Title: strings.TrimSpace(title)}
	if found {
		reading.Note = strings.TrimSpace(note)
	}
	return reading
}
