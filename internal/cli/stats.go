package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haakusi/momentum/internal/domain"
	"github.com/haakusi/momentum/internal/util"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show habit statistics",
	Long: `Show a summary of the aggregated habit statistics: current streak,
this week against the weekly targets, this month, this year, and the
most recently read books.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	doc, err := app.StatsRepo.Load(ctx)
	if err != nil {
		return err
	}

	printStats(doc, app.Clock())
	return nil
}

func printStats(doc *domain.StatsDocument, now time.Time) {
	streak := doc.Streak()
	week := doc.WeekSnapshot(now)
	month := doc.MonthSnapshot(now)
	year := doc.YearSnapshot(now)

	fmt.Println()
	fmt.Printf("  momentum Stats\n")
	fmt.Printf("  ==============\n")
	fmt.Println()

	fmt.Printf("  Recorded days:     %d\n", len(doc.Daily))
	fmt.Printf("  Current streak:    %d day(s)\n", streak.Current)
	fmt.Printf("  Best streak:       %d day(s)\n", streak.Best)
	fmt.Println()

	fmt.Printf("  This Week (%s)\n", domain.WeekKey(now))
	fmt.Printf("  ---------\n")
	for _, c := range domain.Categories {
		fmt.Printf("  %-18s %d / %d day(s), %s\n",
			c.Title()+":", week.Days[c], c.WeeklyTarget(), util.FormatMinutes(week.Minutes[c]))
	}
	fmt.Printf("  Total:             %s\n", util.FormatMinutes(week.TotalMinutes()))
	fmt.Println()

	fmt.Printf("  This Month (%s)\n", domain.MonthKey(now))
	fmt.Printf("  ----------\n")
	for _, c := range domain.Categories {
		fmt.Printf("  %-18s %s over %d day(s)\n",
			c.Title()+":", util.FormatMinutes(month.Minutes[c]), month.Days[c])
	}
	fmt.Println()

	fmt.Printf("  %d Overview\n", now.Year())
	fmt.Printf("  -------------\n")
	fmt.Printf("  Active days:       %d\n", year.ActiveDays)
	for _, c := range domain.Categories {
		fmt.Printf("  %-18s %s\n", c.Title()+":", util.FormatMinutes(year.Minutes[c]))
	}
	fmt.Println()

	if books := doc.RecentBooks(3); len(books) > 0 {
		fmt.Printf("  Recent Books\n")
		fmt.Printf("  ------------\n")
		for _, b := range books {
			fmt.Printf("  %-40s last read %s\n", util.Clamp(b.Title, 38), b.LastRead)
		}
		fmt.Println()
	}
}
