package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhakola/vocablo/internal/mastery"
	"github.com/jhakola/vocablo/internal/stats"
	"github.com/jhakola/vocablo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("days", 7, "Recent-activity window in days")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	masterySvc := mastery.NewService(ctx, st.Documents(), st.Attempts())
	report := stats.Aggregate(masterySvc.Snapshot(), cat)

	fmt.Printf("Level: %s\n\n", report.Level.DisplayName())
	fmt.Printf("Words practiced:      %d\n", report.TotalPracticed)
	fmt.Printf("Known (60+):          %d\n", report.Known)
	fmt.Printf("Mastered (85+):       %d\n", report.Mastered)
	fmt.Printf("Needs reinforcement:  %d\n", report.NeedsReinforcement)
	fmt.Printf("Average score:        %.1f\n\n", report.AverageScore)

	fmt.Println("Frequency coverage:")
	for _, band := range report.Coverage {
		fmt.Printf("  top %-5d %d/%d known\n", band.Band, band.Known, band.CatalogItems)
	}

	ms := report.NextMilestone
	fmt.Printf("\nNext milestone: %s (%d/%d)\n", ms.Description, ms.Current, ms.Target)

	days, _ := cmd.Flags().GetInt("days")
	since := time.Now().AddDate(0, 0, -days)
	activity, err := st.Attempts().RecentActivity(ctx, since)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not read recent activity:", err)
		return nil
	}
	fmt.Printf("\nLast %d days: %d attempts over %d sessions, %d distinct words, %d first-try\n",
		days, activity.Attempts, activity.Sessions, activity.Items, activity.FirstTry)
	return nil
}
