package markdown

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/haakusi/momentum/internal/domain"
	"github.com/haakusi/momentum/internal/util"
)

const progressBarWidth = 5

// WriteDashboard regenerates README.md from the stats document. A document
// with no recorded days gets the onboarding README instead.
func (w *Writer) WriteDashboard(doc *domain.StatsDocument, now time.Time) error {
	content := initialReadme
	if len(doc.Daily) > 0 {
		content = renderDashboard(doc, now)
	}
	if err := os.WriteFile(w.join("README.md"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	return nil
}

func renderDashboard(doc *domain.StatsDocument, now time.Time) string {
	streak := doc.Streak()
	week := doc.WeekSnapshot(now)
	month := doc.MonthSnapshot(now)
	year := doc.YearSnapshot(now)

	var b strings.Builder

	b.WriteString("<div align=\"center\">\n\n")
	b.WriteString("# 🎯 Daily Momentum\n\n")
	b.WriteString("**매일매일 조금씩, 꾸준히 나아가는 습관 만들기**\n\n")
	b.WriteString("</div>\n\n---\n\n")
	b.WriteString("## 📊 Progress Dashboard\n\n")

	hero := fmt.Sprintf("🔥 **Streak**: **%d days**  •  🏆 **Best**: **%d days**  •  📅 **Total Active**: **%d days**",
		streak.Current, streak.Best, year.ActiveDays)
	fmt.Fprintf(&b, "<div align=\"center\">\n\n%s\n\n</div>\n\n", util.Clamp(hero, 120))

	writeWeekTable(&b, doc, week, now)
	writeMonthTable(&b, month, now)
	writeYearTable(&b, year, now)
	writeRecentDays(&b, doc, now)
	writeRecentBooks(&b, doc)

	b.WriteString("---\n\n<div align=\"center\">\n\n")
	b.WriteString("**[➕ 오늘 기록하기](../../issues/new/choose)**\n\n")
	b.WriteString("**📈 Consistency is the key to momentum! 🚀**\n\n")
	b.WriteString("</div>\n")
	return b.String()
}

func writeWeekTable(b *strings.Builder, doc *domain.StatsDocument, week domain.Snapshot, now time.Time) {
	fmt.Fprintf(b, "### 📅 This Week · %s Week\n\n", util.Ordinal(doc.HabitWeek(now)))
	b.WriteString("| Habit | Progress | Goal | Status |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, c := range domain.Categories {
		days := week.Days[c]
		target := c.WeeklyTarget()
		fmt.Fprintf(b, "| %s %s | %s | %d / %d | %d%% |\n",
			c.Marker(), c.Title(),
			util.ProgressBar(days, target, progressBarWidth),
			days, target,
			util.AchievementRate(days, target))
	}
	fmt.Fprintf(b, "\n**⏱ Total:** **%s** active this week\n\n", util.FormatMinutes(week.TotalMinutes()))
}

func writeMonthTable(b *strings.Builder, month domain.Snapshot, now time.Time) {
	fmt.Fprintf(b, "### 📈 This Month (%d월)\n\n", int(now.Month()))
	b.WriteString("| 💪 Fitness | 🗣️ English | 🔬 Research |\n|:--:|:--:|:--:|\n")
	fmt.Fprintf(b, "| **%s** | **%s** | **%s** |\n",
		util.FormatMinutes(month.Minutes[domain.CategoryFitness]),
		util.FormatMinutes(month.Minutes[domain.CategoryEnglish]),
		util.FormatMinutes(month.Minutes[domain.CategoryResearch]))
	fmt.Fprintf(b, "| %d day(s) | %d day(s) | %d day(s) |\n\n",
		month.Days[domain.CategoryFitness],
		month.Days[domain.CategoryEnglish],
		month.Days[domain.CategoryResearch])
}

func writeYearTable(b *strings.Builder, year domain.Snapshot, now time.Time) {
	fmt.Fprintf(b, "### 🏆 %d Overview\n\n<div align=\"center\">\n\n", now.Year())
	b.WriteString("| Active Days | 💪 Fitness | 🗣️ English | 🔬 Research |\n|---:|---:|---:|---:|\n")
	fmt.Fprintf(b, "| **%d** | %s | %s | **%s** |\n\n</div>\n\n",
		year.ActiveDays,
		util.FormatMinutes(year.Minutes[domain.CategoryFitness]),
		util.FormatMinutes(year.Minutes[domain.CategoryEnglish]),
		util.FormatMinutes(year.Minutes[domain.CategoryResearch]))
}

func writeRecentDays(b *strings.Builder, doc *domain.StatsDocument, now time.Time) {
	b.WriteString("### 📆 Last 7 Days\n\n")
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		record := doc.Daily[day.Format(domain.DateLayout)]

		var icons []string
		for _, c := range domain.Categories {
			if record.Minutes(c) > 0 {
				icons = append(icons, c.Marker())
			}
		}
		if record.Reading != nil && *record.Reading != "" {
			icons = append(icons, "📚")
		}

		line := "⬜"
		if len(icons) > 0 {
			line = strings.Join(icons, " ")
		}
		fmt.Fprintf(b, "`%s`  %s\n", day.Format("01/02"), line)
	}
	b.WriteString("\n")
}

func writeRecentBooks(b *strings.Builder, doc *domain.StatsDocument) {
	books := doc.RecentBooks(3)
	if len(books) == 0 {
		return
	}
	b.WriteString("### 📚 Reading\n\n")
	for _, book := range books {
		if book.LastRead != "" {
			fmt.Fprintf(b, "- **%s** _(last: %s)_\n", book.Title, book.LastRead)
		} else {
			fmt.Fprintf(b, "- **%s**\n", book.Title)
		}
		if n := len(book.Notes); n > 0 {
			fmt.Fprintf(b, "  - %s\n", util.Clamp(book.Notes[n-1].Note, 120))
		}
	}
	b.WriteString("\n")
}

const initialReadme = `# 🎯 Daily Momentum

> 매일매일 조금씩, 꾸준히 나아가는 습관 만들기 🚀

## 🎮 시작하기

1. [New Issue](../../issues/new/choose) 클릭
2. "📝 Daily Log" 템플릿 선택
3. 오늘의 활동 입력 후 Submit!

### 입력 형식

` + "```" + `
💪 1.5h
🗣️ 45m
🔬 3h - 회로 실험
📚 Quantum Computing - Ch.3
` + "```" + `

### 시간 입력 방법

- ` + "`1h`" + ` 또는 ` + "`1시간`" + ` → 1시간
- ` + "`30m`" + ` 또는 ` + "`30분`" + ` → 30분
- ` + "`1.5h`" + ` 또는 ` + "`1시간 30분`" + ` → 1시간 30분

---

첫 기록을 남기면 여기에 통계가 표시됩니다!
`
