package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/tui"
	"github.com/balkashynov/logbook/internal/workout"
)

var workoutStatsCmd = &cobra.Command{
	Use:   "stats [exercise]",
	Short: "Show per-exercise statistics",
	Long: `Show last and best weight, session count and trend for every exercise on
the roster, or the details of a single exercise.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")

		if len(args) == 1 {
			id, err := resolveExercise(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			stats := app.workout.ExerciseStats(id)
			if asJSON {
				if err := printJSON(stats); err != nil {
					fmt.Printf("Error: %v\n", err)
				}
				return
			}
			printExerciseStats(stats)
			return
		}

		all := app.workout.AllStats()
		if asJSON {
			if err := printJSON(all); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("%-6s %-20s %9s %9s %9s %s\n", "ID", "EXERCISE", "LAST", "BEST", "SESSIONS", "TREND")
		fmt.Println(strings.Repeat("-", 70))
		for _, s := range all {
			last := "-"
			if s.LastWeight != nil {
				last = formatAmount(*s.LastWeight, "kg")
			}
			best := "-"
			if s.TotalSessions > 0 {
				best = formatAmount(s.BestWeight, "kg")
			}
			fmt.Printf("%-6s %-20s %9s %9s %9d %s %s\n",
				s.ExerciseID,
				truncate(workout.ExerciseName(s.ExerciseID), 20),
				last, best, s.TotalSessions,
				trendIcon(s.Trend), s.Trend)
		}
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Show every set logged for an exercise",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := resolveExercise(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entries := app.workout.ExerciseEntries(id)
		if len(entries) == 0 {
			fmt.Printf("No sets logged for %s %s yet.\n", id, workout.ExerciseName(id))
			return
		}

		stats := app.workout.ExerciseStats(id)
		fmt.Printf("📒 %s %s (%d sets)\n\n", id, workout.ExerciseName(id), len(entries))
		for _, e := range entries {
			marker := " "
			if e.WeightKg == stats.BestWeight {
				marker = "*"
			}
			fmt.Printf(" %s %-10s %8s kg  %6s  %-9s %s\n",
				marker,
				e.Date.In(app.workout.Location()).Format("02/01/2006"),
				formatAmount(e.WeightKg, ""),
				formatSeconds(e.TimeSeconds),
				shortID(e.ID),
				e.Notes)
		}
	},
}

var workoutSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List training sessions, one per day",
	Run: func(cmd *cobra.Command, args []string) {
		sessions := app.workout.Sessions()
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(sessions); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		for _, s := range sessions {
			fmt.Printf("🏋️ %s  %d sets  volume %s kg  avg %s\n",
				s.Date.Format("Mon 02/01/2006"),
				s.TotalSets,
				formatAmount(s.TotalVolume, ""),
				formatSeconds(int(s.AvgTime+0.5)))
			if verbose {
				for _, e := range s.Entries {
					fmt.Printf("    %-6s %-20s %8s kg  %s\n",
						e.ExerciseID,
						truncate(workout.ExerciseName(e.ExerciseID), 20),
						formatAmount(e.WeightKg, ""),
						formatSeconds(e.TimeSeconds))
				}
			}
		}
	},
}

var workoutExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the training roster with machine settings",
	Run: func(cmd *cobra.Command, args []string) {
		for _, ex := range models.Exercises {
			name := ex.Name
			if ex.Optional {
				name += " (optional)"
			}
			fmt.Printf("%-6s %-28s %s\n", ex.ID, name, ex.MachineSettings)
		}
	},
}

var workoutDashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the workout dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		runDashboard(noUI)
	},
}

func runDashboard(noUI bool) {
	if !noUI {
		if err := tui.RunDashboardTUI(app.workout); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	summary := app.workout.Summary()
	fmt.Println("🏋️ Workout dashboard")
	fmt.Println()
	fmt.Printf("  This week:      %d\n", summary.ThisWeek)
	fmt.Printf("  Sessions:       %d\n", summary.TotalSessions)
	fmt.Printf("  Improving:      %d\n", summary.Improving)
	fmt.Printf("  Personal bests: %d\n", summary.PersonalBests)

	sessions := app.workout.Sessions()
	if len(sessions) > 0 {
		fmt.Printf("  Last session:   %s\n", formatWhen(sessions[0].Date, time.Now().In(app.workout.Location())))
	}
}

func printExerciseStats(stats models.ExerciseStats) {
	fmt.Printf("%s %s %s\n\n", trendIcon(stats.Trend), stats.ExerciseID, workout.ExerciseName(stats.ExerciseID))
	if ex, ok := workout.Exercise(stats.ExerciseID); ok && ex.MachineSettings != "" {
		fmt.Printf("  Machine:   %s\n", ex.MachineSettings)
	}
	if stats.TotalSessions == 0 {
		fmt.Println("  Nothing logged yet.")
		return
	}

	fmt.Printf("  Last:      %s for %s\n", formatAmount(*stats.LastWeight, "kg"), formatSeconds(*stats.LastTime))
	fmt.Printf("  Best:      %s, longest %s\n", formatAmount(stats.BestWeight, "kg"), formatSeconds(stats.BestTime))
	fmt.Printf("  Sessions:  %d\n", stats.TotalSessions)
	fmt.Printf("  Trend:     %s\n", stats.Trend)

	fmt.Println("\n  Recent:")
	for _, e := range stats.RecentEntries {
		fmt.Printf("    %-10s %8s kg  %s\n",
			e.Date.In(app.workout.Location()).Format("02/01/2006"),
			formatAmount(e.WeightKg, ""),
			formatSeconds(e.TimeSeconds))
	}
}

func init() {
	workoutStatsCmd.Flags().Bool("json", false, "Print statistics as JSON")

	workoutSessionsCmd.Flags().Bool("json", false, "Print sessions as JSON")
	workoutSessionsCmd.Flags().IntP("limit", "l", 0, "Show at most this many sessions")
	workoutSessionsCmd.Flags().BoolP("verbose", "v", false, "List the sets of every session")

	workoutDashboardCmd.Flags().Bool("no-ui", false, "Print the summary instead of opening the dashboard")
}
