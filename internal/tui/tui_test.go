package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/balkashynov/logbook/internal/db"
	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/workout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var refNow = time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, entries ...models.WorkoutEntry) *workout.Store {
	t.Helper()
	kv := db.NewMemoryKV()
	require.NoError(t, kv.Set(workout.EntriesKey, `[]`))
	require.NoError(t, kv.Set(workout.SeededKey, "true"))

	n := 0
	store := workout.New(kv,
		workout.WithClock(func() time.Time { return refNow }),
		workout.WithLocation(time.UTC),
		workout.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	require.NoError(t, store.Load())

	for _, e := range entries {
		_, err := store.Add(e)
		require.NoError(t, err)
	}
	return store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 20, barLength(100, 100, 20))
	assert.Equal(t, 10, barLength(50, 100, 20))
	assert.Equal(t, 1, barLength(1, 100, 20))
	assert.Equal(t, 0, barLength(0, 100, 20))
	assert.Equal(t, 0, barLength(50, 0, 20))
	assert.Equal(t, 20, barLength(120, 100, 20))
}

func TestHistoryChart_LastTenOldestFirst(t *testing.T) {
	// newest first, as ExerciseStats returns them
	var entries []models.WorkoutEntry
	for i := 12; i >= 1; i-- {
		entries = append(entries, models.WorkoutEntry{
			Date:     time.Date(2026, 3, i, 9, 0, 0, 0, time.UTC),
			WeightKg: float64(60 + i),
		})
	}

	lines := historyChart(entries, 72, 20)

	require.Len(t, lines, chartEntries)
	assert.Contains(t, lines[0], "03/03")
	assert.Contains(t, lines[0], "63 kg")
	assert.Contains(t, lines[len(lines)-1], "12/03")
	assert.Contains(t, lines[len(lines)-1], "72 kg")
}

func TestDashboardModel_Navigation(t *testing.T) {
	store := newTestStore(t, models.WorkoutEntry{ExerciseID: "B6", WeightKg: 50, TimeSeconds: 120})

	var m tea.Model = NewDashboardModel(store)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = press(t, m, "down", "down", "up")
	dash := m.(DashboardModel)
	assert.Equal(t, 1, dash.selected)
	assert.Equal(t, "B6", dash.stats[dash.selected].ExerciseID)

	m, _ = press(t, m, "up", "up", "up")
	assert.Equal(t, 0, m.(DashboardModel).selected)

	m, _ = press(t, m, "down", "enter")
	assert.Equal(t, viewHistory, m.(DashboardModel).view)
	assert.Contains(t, m.View(), "Back/Lat Pull-Row")
	assert.Contains(t, m.View(), "50 kg")

	m, cmd := press(t, m, "esc")
	assert.Equal(t, viewRoster, m.(DashboardModel).view)
	assert.Nil(t, cmd)

	_, cmd = press(t, m, "q")
	assert.NotNil(t, cmd)
}

func TestDashboardModel_View(t *testing.T) {
	store := newTestStore(t, models.WorkoutEntry{ExerciseID: "A3", WeightKg: 82.5, TimeSeconds: 120})

	var m tea.Model = NewDashboardModel(store)
	assert.Equal(t, "Loading...", m.View())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, ex := range models.Exercises {
		assert.Contains(t, view, ex.ID)
	}
	assert.Contains(t, view, "82.5 kg")
	assert.Contains(t, view, "this week")
}

func TestDashboardModel_QuickLogSelected(t *testing.T) {
	store := newTestStore(t)

	var m tea.Model = NewDashboardModel(store)
	m, cmd := press(t, m, "down", "down", "l")

	assert.NotNil(t, cmd)
	assert.Equal(t, models.Exercises[2].ID, m.(DashboardModel).logExercise)
}

func TestQuickLogModel_PrefillsFromLastSet(t *testing.T) {
	store := newTestStore(t, models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80, TimeSeconds: 105})

	m := NewQuickLogModel(store, "A3")

	assert.Equal(t, StepWeight, m.step)
	assert.Equal(t, "80", m.inputs[StepWeight].Value())
	assert.Equal(t, "105", m.inputs[StepTime].Value())
	require.NotNil(t, m.last)
}

func TestQuickLogModel_Save(t *testing.T) {
	store := newTestStore(t, models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80, TimeSeconds: 105, Date: refNow.AddDate(0, 0, -2)})

	var m tea.Model = NewQuickLogModel(store, "A3")
	m, cmd := press(t, m, "enter", "enter", "enter")

	quick := m.(QuickLogModel)
	require.NoError(t, quick.err)
	assert.True(t, quick.completed)
	assert.NotNil(t, cmd)

	last, ok := store.LastEntry("A3")
	require.True(t, ok)
	assert.Equal(t, quick.created.ID, last.ID)
	assert.Equal(t, 80.0, last.WeightKg)
	assert.Equal(t, 105, last.TimeSeconds)
	assert.Len(t, store.Entries(), 2)
}

func TestQuickLogModel_ChooseExercise(t *testing.T) {
	store := newTestStore(t)

	var m tea.Model = NewQuickLogModel(store, "")
	assert.Equal(t, StepExercise, m.(QuickLogModel).step)

	m, _ = press(t, m, "Z", "9", "enter")
	assert.Equal(t, StepExercise, m.(QuickLogModel).step)
	assert.NotEmpty(t, m.(QuickLogModel).validationErr)

	quick := m.(QuickLogModel)
	quick.inputs[StepExercise].SetValue("c2")
	m, _ = press(t, quick, "enter")
	quick = m.(QuickLogModel)
	assert.Equal(t, StepWeight, quick.step)
	assert.Equal(t, "C2", quick.exerciseID)
	assert.Equal(t, fmt.Sprint(workout.DefaultTimeSeconds), quick.inputs[StepTime].Value())

	quick.inputs[StepWeight].SetValue("heavy")
	m, _ = press(t, quick, "enter")
	assert.Equal(t, StepWeight, m.(QuickLogModel).step)
	assert.NotEmpty(t, m.(QuickLogModel).validationErr)
}

func TestQuickLogModel_Cancel(t *testing.T) {
	store := newTestStore(t)

	var m tea.Model = NewQuickLogModel(store, "A3")
	m, cmd := press(t, m, "esc")

	assert.True(t, m.(QuickLogModel).cancelled)
	assert.NotNil(t, cmd)
	assert.Empty(t, store.Entries())
}
