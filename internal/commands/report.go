package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise a day, week or month",
	Long: `Summarise the logged items of a period ending on a given day.

Periods:
  daily    - the end day only
  weekly   - the end day and the 7 days before it
  monthly  - the end day and the 30 days before it

Examples:
  logbook report
  logbook report --period monthly --end 28/02/2026
  logbook report -p daily --json`,
	Run: func(cmd *cobra.Command, args []string) {
		if !requireFeature(app.cfg.Tracker.EnableReports, "reports") {
			return
		}
		now := time.Now().In(app.tracker.Location())

		end := now
		if raw, _ := cmd.Flags().GetString("end"); raw != "" {
			parsed, err := parser.ParseWhen(raw, now)
			if err != nil {
				fmt.Printf("Error: invalid --end: %v\n", err)
				return
			}
			end = parsed
		}

		period, _ := cmd.Flags().GetString("period")
		report, err := app.tracker.GenerateReport(models.Period(strings.ToLower(period)), end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(report); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		printReport(report)
	},
}

func printReport(report models.Report) {
	unit := app.cfg.Tracker.DefaultUnit
	if limit := app.tracker.Settings().DailyLimit; limit != nil {
		unit = limit.Unit
	}

	fmt.Printf("📊 %s report: %s - %s\n\n", capitalize(string(report.Period)),
		report.StartDate.Format("02/01/2006"), report.EndDate.Format("02/01/2006"))
	fmt.Printf("  Total:        %s\n", formatAmount(report.TotalAmount, unit))
	fmt.Printf("  Per day:      %s\n", formatAmount(report.AveragePerDay, unit))
	if report.PeakAmount > 0 {
		fmt.Printf("  Peak day:     %s (%s)\n", report.PeakDate.Format("Mon 02/01/2006"), formatAmount(report.PeakAmount, unit))
	}

	if len(report.ItemsByPreset) == 0 {
		return
	}

	keys := make([]string, 0, len(report.ItemsByPreset))
	for key := range report.ItemsByPreset {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return report.ItemsByPreset[keys[i]] > report.ItemsByPreset[keys[j]]
	})

	fmt.Println("\n  Breakdown:")
	for _, key := range keys {
		label := key
		if preset, ok := app.tracker.Preset(key); ok {
			label = preset.Name
		}
		fmt.Printf("    %-22s %s\n", truncate(label, 22), formatAmount(report.ItemsByPreset[key], unit))
	}
}

func init() {
	reportCmd.Flags().StringP("period", "p", string(models.PeriodWeekly), "daily, weekly or monthly")
	reportCmd.Flags().StringP("end", "e", "", "Last day of the report (default today)")
	reportCmd.Flags().Bool("json", false, "Print the report as JSON")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
