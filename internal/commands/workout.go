package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
	"github.com/balkashynov/logbook/internal/tui"
	"github.com/balkashynov/logbook/internal/workout"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"gym", "w"},
	Short:   "Log and review machine workouts",
	Long: `Log sets on the machines of your training roster and follow how the
working weight develops. Run without a subcommand to open the dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDashboard(false)
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log [exercise] [weight] [time]",
	Short: "Log a set",
	Long: `Log a set on a machine.

With an exercise and a weight the set is logged directly. Otherwise the
quick-log screen opens, prefilled with the last set of that exercise.

Weight accepts 82.5, 82,5 or 82.5kg. Time accepts 120, 90s, 2m or 1:30 and
defaults to 120 seconds.

Examples:
  logbook workout log A3 82.5
  logbook workout log f3.1 45 1:45 --notes "seat 16"
  logbook workout log B6 50 --at yesterday
  logbook workout log C2`,
	Args: cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")

		var exerciseID string
		if len(args) > 0 {
			id, err := resolveExercise(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			exerciseID = id
		}

		if len(args) < 2 {
			if noUI {
				fmt.Println("Error: exercise and weight are required with --no-ui")
				return
			}
			if err := tui.RunQuickLogTUI(app.workout, exerciseID); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		weight, _, err := parser.ParseAmount(args[1])
		if err != nil {
			fmt.Printf("Error: invalid weight: %v\n", err)
			return
		}
		if weight < 0 {
			fmt.Println("Error: weight cannot be negative")
			return
		}

		seconds := workout.DefaultTimeSeconds
		if len(args) == 3 {
			seconds, err = parser.ParseSeconds(args[2])
			if err != nil {
				fmt.Printf("Error: invalid time: %v\n", err)
				return
			}
			if seconds == 0 {
				seconds = workout.DefaultTimeSeconds
			}
		}

		entry := models.WorkoutEntry{
			ExerciseID:  exerciseID,
			WeightKg:    weight,
			TimeSeconds: seconds,
		}
		entry.Notes, _ = cmd.Flags().GetString("notes")
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			when, err := parser.ParseWhen(at, time.Now().In(app.workout.Location()))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			entry.Date = when
		}

		previous, hadPrevious := app.workout.LastEntry(exerciseID)

		created, err := app.workout.Add(entry)
		if err != nil {
			fmt.Printf("Error saving set: %v\n", err)
			return
		}

		fmt.Printf("💪 Logged %s %s: %s kg for %s\n",
			created.ExerciseID, workout.ExerciseName(created.ExerciseID),
			formatAmount(created.WeightKg, ""), formatSeconds(created.TimeSeconds))
		if hadPrevious {
			fmt.Printf("  last time: %s kg (%s)\n", formatAmount(previous.WeightKg, ""), formatDelta(created.WeightKg-previous.WeightKg))
		}
		stats := app.workout.ExerciseStats(created.ExerciseID)
		if stats.BestWeight == created.WeightKg && stats.TotalSessions > 1 {
			fmt.Println("  🏆 personal best!")
		}
		fmt.Printf("  trend: %s %s\n", trendIcon(stats.Trend), stats.Trend)
	},
}

var workoutTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the sets logged today",
	Run: func(cmd *cobra.Command, args []string) {
		entries := app.workout.TodayEntries()
		if len(entries) == 0 {
			fmt.Println("No sets logged today. Use 'logbook workout log' to add one.")
			return
		}

		var volume float64
		fmt.Printf("📅 Today: %d sets\n\n", len(entries))
		for _, e := range entries {
			volume += e.WeightKg
			fmt.Printf("  %-6s %-20s %8s kg  %6s  %s\n",
				e.ExerciseID,
				truncate(workout.ExerciseName(e.ExerciseID), 20),
				formatAmount(e.WeightKg, ""),
				formatSeconds(e.TimeSeconds),
				shortID(e.ID))
		}
		fmt.Printf("\n  Volume: %s kg\n", formatAmount(volume, ""))
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm [entry-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a logged set",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := resolveEntry(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := app.workout.Delete(entry.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted %s set of %s kg\n", entry.ExerciseID, formatAmount(entry.WeightKg, ""))
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit [entry-id]",
	Short: "Change a logged set",
	Long: `Change a logged set. Only the flags you pass are changed.

Examples:
  logbook workout edit 3f2a --weight 85
  logbook workout edit 3f2a --time 1:40 --notes "felt heavy"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := resolveEntry(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var patch workout.EntryPatch
		flags := cmd.Flags()
		if flags.Changed("exercise") {
			raw, _ := flags.GetString("exercise")
			id, err := resolveExercise(raw)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			patch.ExerciseID = &id
		}
		if flags.Changed("weight") {
			raw, _ := flags.GetString("weight")
			weight, _, err := parser.ParseAmount(raw)
			if err != nil {
				fmt.Printf("Error: invalid weight: %v\n", err)
				return
			}
			patch.WeightKg = &weight
		}
		if flags.Changed("time") {
			raw, _ := flags.GetString("time")
			seconds, err := parser.ParseSeconds(raw)
			if err != nil {
				fmt.Printf("Error: invalid time: %v\n", err)
				return
			}
			patch.TimeSeconds = &seconds
		}
		if flags.Changed("at") {
			raw, _ := flags.GetString("at")
			when, err := parser.ParseWhen(raw, time.Now().In(app.workout.Location()))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			patch.Date = &when
		}
		if flags.Changed("notes") {
			notes, _ := flags.GetString("notes")
			patch.Notes = &notes
		}

		if err := app.workout.Update(entry.ID, patch); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		updated, _ := app.workout.Get(entry.ID)
		fmt.Printf("✅ Updated %s: %s %s kg for %s\n", shortID(updated.ID), updated.ExerciseID,
			formatAmount(updated.WeightKg, ""), formatSeconds(updated.TimeSeconds))
	},
}

var workoutExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all workout entries as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExport(app.workout, args)
	},
}

var workoutImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all workout entries from a JSON export",
	Long: `Replace all workout entries with the ones in the file. The file may be an
export document or a bare array of entries. Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if runImport(app.workout, args[0]) {
			fmt.Printf("✅ Imported %d sets\n", len(app.workout.Entries()))
		}
	},
}

// resolveExercise normalizes an exercise id and checks it against the roster
func resolveExercise(raw string) (string, error) {
	id, err := parser.NormalizeExerciseID(raw)
	if err != nil {
		return "", err
	}
	if _, ok := workout.Exercise(id); !ok {
		ids := make([]string, len(models.Exercises))
		for i, ex := range models.Exercises {
			ids[i] = ex.ID
		}
		return "", fmt.Errorf("unknown exercise '%s'. Choose one of: %s", id, strings.Join(ids, ", "))
	}
	return id, nil
}

// resolveEntry finds a workout entry by full id or unique id prefix
func resolveEntry(ref string) (models.WorkoutEntry, error) {
	entries := app.workout.Entries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	id, err := matchID(ref, ids)
	if err != nil {
		return models.WorkoutEntry{}, err
	}
	entry, _ := app.workout.Get(id)
	return entry, nil
}

func formatSeconds(seconds int) string {
	if seconds%60 == 0 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	if seconds > 60 {
		return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

func formatDelta(delta float64) string {
	switch {
	case delta > 0:
		return "+" + formatAmount(delta, "kg")
	case delta < 0:
		return "-" + formatAmount(-delta, "kg")
	default:
		return "same"
	}
}

func trendIcon(trend models.Trend) string {
	switch trend {
	case models.TrendUp:
		return "📈"
	case models.TrendDown:
		return "📉"
	case models.TrendSteady:
		return "➡️"
	default:
		return "🆕"
	}
}

func init() {
	workoutLogCmd.Flags().String("at", "", "When the set was done (yesterday, 18:30, 21/01/2026 18:30, 2h ago)")
	workoutLogCmd.Flags().StringP("notes", "n", "", "Notes")
	workoutLogCmd.Flags().Bool("no-ui", false, "Never open the quick-log screen")

	workoutEditCmd.Flags().String("exercise", "", "Exercise id")
	workoutEditCmd.Flags().StringP("weight", "w", "", "Weight in kg")
	workoutEditCmd.Flags().StringP("time", "t", "", "Time under load")
	workoutEditCmd.Flags().String("at", "", "When the set was done")
	workoutEditCmd.Flags().StringP("notes", "n", "", "Notes")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutTodayCmd)
	workoutCmd.AddCommand(workoutRmCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutExportCmd)
	workoutCmd.AddCommand(workoutImportCmd)
	workoutCmd.AddCommand(workoutStatsCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	workoutCmd.AddCommand(workoutSessionsCmd)
	workoutCmd.AddCommand(workoutExercisesCmd)
	workoutCmd.AddCommand(workoutDashboardCmd)
}
