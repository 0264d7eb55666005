package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the daily-table key format. Lexical order of these keys
// matches calendar order, which the period queries rely on.
const DateLayout = "2006-01-02"

// DayRecord is one day's aggregated minutes plus the book read that day.
type DayRecord struct {
	Fitness  int     `json:"fitness"`
	English  int     `json:"english"`
	Research int     `json:"research"`
	Reading  *string `json:"reading"`
}

// Minutes returns the recorded minutes for a category.
func (r DayRecord) Minutes(c Category) int {
	switch c {
	case CategoryFitness:
		return r.Fitness
	case CategoryEnglish:
		return r.English
	case CategoryResearch:
		return r.Research
	}
	return 0
}

// Active reports whether any activity category has nonzero minutes.
func (r DayRecord) Active() bool {
	return r.Fitness > 0 || r.English > 0 || r.Research > 0
}

// PeriodTotals is the derived per-week/month/year aggregate. Days counts the
// daily records falling in the period and is always recomputed from the
// daily table, never tracked independently.
type PeriodTotals struct {
	Fitness  int `json:"fitness"`
	English  int `json:"english"`
	Research int `json:"research"`
	Days     int `json:"days"`
}

// BookNote is one dated reading note.
type BookNote struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// Book is one entry of the reading index, keyed by exact title.
type Book struct {
	Title     string     `json:"title"`
	FirstRead string     `json:"first_read"`
	LastRead  string     `json:"last_read"`
	Notes     []BookNote `json:"notes"`
}

// StatsDocument is the persisted aggregate state. It lives as a single JSON
// file, loaded, mutated once per submission, and stored back whole.
type StatsDocument struct {
	Daily   map[string]DayRecord    `json:"daily"`
	Weekly  map[string]PeriodTotals `json:"weekly"`
	Monthly map[string]PeriodTotals `json:"monthly"`
	Yearly  map[string]PeriodTotals `json:"yearly"`
	Books   []Book                  `json:"books"`
}

// NewStatsDocument returns an empty document with all tables initialized.
func NewStatsDocument() *StatsDocument {
	return &StatsDocument{
		Daily:   map[string]DayRecord{},
		Weekly:  map[string]PeriodTotals{},
		Monthly: map[string]PeriodTotals{},
		Yearly:  map[string]PeriodTotals{},
		Books:   []Book{},
	}
}

// WeekKey formats the ISO week period key, e.g. "2025-W51". The year part is
// the ISO week-numbering year, so the week spanning a year boundary keeps a
// single key.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey formats the month period key, e.g. "2025-12".
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// YearKey formats the year period key, e.g. "2025".
func YearKey(t time.Time) string { return t.Format("2006") }

// Apply records one day's entry. The daily record for the date key is
// replaced outright, so resubmitting a date is idempotent, and every period
// aggregate is rebuilt from the daily table afterwards. Rebuilding (rather
// than adding deltas) keeps each period total equal to the sum of its daily
// records even when a date is edited and resubmitted.
func (s *StatsDocument) Apply(date time.Time, entry Entry) {
	record := DayRecord{
		Fitness:  entry.Activities[CategoryFitness].Minutes,
		English:  entry.Activities[CategoryEnglish].Minutes,
		Research: entry.Activities[CategoryResearch].Minutes,
	}
	if entry.Reading.Title != "" {
		title := entry.Reading.Title
		record.Reading = &title
	}
	s.Daily[date.Format(DateLayout)] = record

	s.rebuildPeriods()
	s.mergeBook(date, entry.Reading)
}

func (s *StatsDocument) rebuildPeriods() {
	s.Weekly = map[string]PeriodTotals{}
	s.Monthly = map[string]PeriodTotals{}
	s.Yearly = map[string]PeriodTotals{}

	for key, record := range s.Daily {
		day, err := time.Parse(DateLayout, key)
		if err != nil {
			continue
		}
		addPeriod(s.Weekly, WeekKey(day), record)
		addPeriod(s.Monthly, MonthKey(day), record)
		addPeriod(s.Yearly, YearKey(day), record)
	}
}

func addPeriod(periods map[string]PeriodTotals, key string, record DayRecord) {
	totals := periods[key]
	totals.Fitness += record.Fitness
	totals.English += record.English
	totals.Research += record.Research
	totals.Days++
	periods[key] = totals
}

// mergeBook upserts the reading index by exact title. A known title gets its
// last_read moved to the submission date; a note for an already-noted date
// replaces the old note instead of piling up on resubmission.
func (s *StatsDocument) mergeBook(date time.Time, reading Reading) {
	if reading.Title == "" {
		return
	}
	dateStr := date.Format(DateLayout)

	for i := range s.Books {
		if s.Books[i].Title != reading.Title {
			continue
		}
		s.Books[i].LastRead = dateStr
		if reading.Note != "" {
			s.Books[i].Notes = upsertNote(s.Books[i].Notes, dateStr, reading.Note)
		}
		return
	}

	book := Book{Title: reading.Title, FirstRead: dateStr, LastRead: dateStr, Notes: []BookNote{}}
	if reading.Note != "" {
		book.Notes = append(book.Notes, BookNote{Date: dateStr, Note: reading.Note})
	}
	s.Books = append(s.Books, book)
}

func upsertNote(notes []BookNote, date, note string) []BookNote {
	for i := range notes {
		if notes[i].Date == date {
			notes[i].Note = note
			return notes
		}
	}
	return append(notes, BookNote{Date: date, Note: note})
}

// sortedDates returns the daily keys in calendar order.
func (s *StatsDocument) sortedDates() []string {
	dates := make([]string, 0, len(s.Daily))
	for key := range s.Daily {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

// FirstDate returns the earliest recorded date, if any.
func (s *StatsDocument) FirstDate() (time.Time, bool) {
	for _, key := range s.sortedDates() {
		if day, err := time.Parse(DateLayout, key); err == nil {
			return day, true
		}
	}
	return time.Time{}, false
}
