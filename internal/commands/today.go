package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's items and daily limit progress",
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now().In(app.tracker.Location())
		items := app.tracker.ItemsForDay(now)
		status := app.tracker.LimitStatus(now)

		fmt.Printf("📅 %s, %s\n\n", app.cfg.Tracker.AppName, now.Format("Monday 02/01/2006"))
		if len(items) == 0 {
			fmt.Printf("No %s logged today.\n", app.cfg.Tracker.ItemNamePlural)
		} else {
			printItems(items, now)
			fmt.Println()
		}

		if status.Limit == nil {
			fmt.Printf("Total: %s (no daily limit set)\n", formatAmount(status.Current, app.cfg.Tracker.DefaultUnit))
			return
		}
		fmt.Printf("Total: %s / %s %s\n",
			formatAmount(status.Current, status.Limit.Unit),
			formatAmount(status.Limit.MaxAmount, status.Limit.Unit),
			progressBar(status.Percentage, 20))
		printLimitLine(status)
	},
}

// progressBar renders percentage as [#####.....] capped at 100%
func progressBar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	filled = max(0, min(filled, width))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return fmt.Sprintf("%s %.0f%%", string(bar), percentage)
}
