package domain

import (
	"sort"
	"time"
)

// Snapshot summarizes a calendar window of the daily table. Minutes and Days
// count only days on which the category was actually practiced; ActiveDays
// counts days with any activity at all.
type Snapshot struct {
	Minutes    map[Category]int
	Days       map[Category]int
	ActiveDays int
}

// TotalMinutes sums the minutes of all categories in the window.
func (s Snapshot) TotalMinutes() int {
	total := 0
	for _, m := range s.Minutes {
		total += m
	}
	return total
}

// StreakInfo holds the current and best runs of consecutive active days.
type StreakInfo struct {
	Current int
	Best    int
}

// WeekSnapshot summarizes the ISO week containing now.
func (s *StatsDocument) WeekSnapshot(now time.Time) Snapshot {
	key := WeekKey(now)
	return s.snapshot(func(day time.Time) bool { return WeekKey(day) == key })
}

// MonthSnapshot summarizes the calendar month containing now.
func (s *StatsDocument) MonthSnapshot(now time.Time) Snapshot {
	key := MonthKey(now)
	return s.snapshot(func(day time.Time) bool { return MonthKey(day) == key })
}

// YearSnapshot summarizes the calendar year containing now.
func (s *StatsDocument) YearSnapshot(now time.Time) Snapshot {
	key := YearKey(now)
	return s.snapshot(func(day time.Time) bool { return YearKey(day) == key })
}

func (s *StatsDocument) snapshot(in func(time.Time) bool) Snapshot {
	snap := Snapshot{Minutes: map[Category]int{}, Days: map[Category]int{}}
	for key, record := range s.Daily {
		day, err := time.Parse(DateLayout, key)
		if err != nil || !in(day) {
			continue
		}
		for _, c := range Categories {
			if minutes := record.Minutes(c); minutes > 0 {
				snap.Minutes[c] += minutes
				snap.Days[c]++
			}
		}
		if record.Active() {
			snap.ActiveDays++
		}
	}
	return snap
}

// Streak walks the recorded days in calendar order and counts runs of
// consecutive active calendar days. A gap in the calendar breaks the run
// even though absent days have no daily record.
func (s *StatsDocument) Streak() StreakInfo {
	var info StreakInfo
	var prev time.Time
	run := 0

	dates := s.sortedDates()
	for i, key := range dates {
		day, err := time.Parse(DateLayout, key)
		if err != nil {
			continue
		}
		active := s.Daily[key].Active()
		switch {
		case !active:
			run = 0
		case run > 0 && prev.AddDate(0, 0, 1).Equal(day):
			run++
		default:
			run = 1
		}
		if run > info.Best {
			info.Best = run
		}
		if i == len(dates)-1 && active {
			info.Current = run
		}
		prev = day
	}
	return info
}

// RecentBooks returns up to n books ordered by most recent last_read.
func (s *StatsDocument) RecentBooks(n int) []Book {
	books := make([]Book, 0, len(s.Books))
	for _, b := range s.Books {
		if b.Title != "" {
			books = append(books, b)
		}
	}
	sort.SliceStable(books, func(i, j int) bool { return books[i].LastRead > books[j].LastRead })
	if len(books) > n {
		books = books[:n]
	}
	return books
}

// HabitWeek returns the ordinal week of the habit (1-based) counted from the
// first recorded day.
func (s *StatsDocument) HabitWeek(now time.Time) int {
	first, ok := s.FirstDate()
	if !ok {
		return 1
	}
	days := int(now.Sub(first).Hours() / 24)
	if days < 0 {
		return 1
	}
	return days/7 + 1
}
