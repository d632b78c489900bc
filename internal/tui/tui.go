package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/logbook/internal/workout"
)

// RunDashboardTUI starts the workout dashboard. Quick-logging from the
// dashboard opens the log form and returns to a refreshed dashboard.
func RunDashboardTUI(store *workout.Store) error {
	for {
		p := tea.NewProgram(NewDashboardModel(store), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := finalModel.(DashboardModel)
		if !ok || m.logExercise == "" {
			return nil
		}
		if err := RunQuickLogTUI(store, m.logExercise); err != nil {
			return err
		}
	}
}

// RunQuickLogTUI starts the quick-log form, optionally for a given exercise
func RunQuickLogTUI(store *workout.Store, exerciseID string) error {
	p := tea.NewProgram(NewQuickLogModel(store, exerciseID), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(QuickLogModel); ok {
		if m.cancelled {
			fmt.Println("❌ Nothing logged.")
		} else if m.completed {
			fmt.Printf("💪 Logged %s %s: %s for %ds\n", m.created.ExerciseID,
				workout.ExerciseName(m.created.ExerciseID), formatKg(m.created.WeightKg), m.created.TimeSeconds)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
