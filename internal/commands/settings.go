package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tracker settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Run: func(cmd *cobra.Command, args []string) {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(app.tracker.Settings()); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		printSettings(app.tracker.Settings())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long: `Change settings. Only the flags you pass are changed.

Examples:
  logbook settings set --limit 400mg --warning 75
  logbook settings set --theme dark --reminders 09:00,15:00 --notifications
  logbook settings set --no-limit`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := app.tracker.Settings()
		flags := cmd.Flags()

		if flags.Changed("theme") {
			settings.Theme, _ = flags.GetString("theme")
		}
		if noLimit, _ := flags.GetBool("no-limit"); noLimit {
			settings.DailyLimit = nil
		}
		if flags.Changed("limit") {
			raw, _ := flags.GetString("limit")
			amount, unit, err := parser.ParseAmount(raw)
			if err != nil {
				fmt.Printf("Error: invalid --limit: %v\n", err)
				return
			}
			if unit == "" {
				unit = app.cfg.Tracker.DefaultUnit
			}
			limit := models.DailyLimit{MaxAmount: amount, Unit: unit}
			if settings.DailyLimit != nil {
				limit.WarningThreshold = settings.DailyLimit.WarningThreshold
			}
			settings.DailyLimit = &limit
		}
		if flags.Changed("warning") {
			if settings.DailyLimit == nil {
				fmt.Println("Error: set a limit first with --limit")
				return
			}
			settings.DailyLimit.WarningThreshold, _ = flags.GetFloat64("warning")
		}
		if flags.Changed("notifications") {
			settings.Notifications.Enabled, _ = flags.GetBool("notifications")
		}
		if flags.Changed("limit-warning") {
			settings.Notifications.LimitWarning, _ = flags.GetBool("limit-warning")
		}
		if flags.Changed("reminders") {
			reminders, _ := flags.GetStringSlice("reminders")
			for _, r := range reminders {
				if _, _, err := parser.ParseClock(r); err != nil {
					fmt.Printf("Error: invalid reminder time '%s'. Use HH:MM\n", r)
					return
				}
			}
			settings.Notifications.ReminderTimes = reminders
		}
		if flags.Changed("decay-rate") || flags.Changed("decay-unit") {
			if !requireFeature(app.cfg.Tracker.EnableTimeline, "timeline") {
				return
			}
			timeline := models.TimelineCalculation{DecayUnit: "hours"}
			if settings.TimelineCalculation != nil {
				timeline = *settings.TimelineCalculation
			}
			if flags.Changed("decay-rate") {
				timeline.DecayRate, _ = flags.GetFloat64("decay-rate")
			}
			if flags.Changed("decay-unit") {
				timeline.DecayUnit, _ = flags.GetString("decay-unit")
			}
			settings.TimelineCalculation = &timeline
		}

		if err := app.tracker.UpdateSettings(settings); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Settings saved")
		printSettings(app.tracker.Settings())
	},
}

func printSettings(settings models.Settings) {
	fmt.Printf("⚙️  %s settings\n\n", app.cfg.Tracker.AppName)
	if settings.DailyLimit != nil {
		threshold := settings.DailyLimit.WarningThreshold
		if threshold <= 0 {
			threshold = 80
		}
		fmt.Printf("  Daily limit:    %s (warn at %.0f%%)\n",
			formatAmount(settings.DailyLimit.MaxAmount, settings.DailyLimit.Unit), threshold)
	} else {
		fmt.Println("  Daily limit:    none")
	}
	fmt.Printf("  Theme:          %s\n", settings.Theme)
	fmt.Printf("  Notifications:  %s\n", onOff(settings.Notifications.Enabled))
	fmt.Printf("  Limit warning:  %s\n", onOff(settings.Notifications.LimitWarning))
	if len(settings.Notifications.ReminderTimes) > 0 {
		fmt.Printf("  Reminders:      %s\n", strings.Join(settings.Notifications.ReminderTimes, ", "))
	}
	if tc := settings.TimelineCalculation; tc != nil {
		fmt.Printf("  Decay:          %s per %s\n", formatAmount(tc.DecayRate, ""), strings.TrimSuffix(tc.DecayUnit, "s"))
	}
	fmt.Printf("  Presets:        %d\n", len(settings.Presets))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	settingsShowCmd.Flags().Bool("json", false, "Print the settings as JSON")

	settingsSetCmd.Flags().String("theme", "", "light, dark or system")
	settingsSetCmd.Flags().String("limit", "", "Daily limit, e.g. 400mg")
	settingsSetCmd.Flags().Bool("no-limit", false, "Remove the daily limit")
	settingsSetCmd.Flags().Float64("warning", 80, "Warn at this percentage of the limit")
	settingsSetCmd.Flags().Bool("notifications", false, "Enable reminders")
	settingsSetCmd.Flags().Bool("limit-warning", true, "Warn when approaching the limit")
	settingsSetCmd.Flags().StringSlice("reminders", nil, "Reminder times, e.g. 09:00,15:00")
	settingsSetCmd.Flags().Float64("decay-rate", 0, "Decay rate for the timeline")
	settingsSetCmd.Flags().String("decay-unit", "", "hours or minutes")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
