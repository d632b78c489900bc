package workout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/workout"
)

func TestClassifyTrend(t *testing.T) {
	testCases := map[string]struct {
		weights []float64
		want    models.Trend
	}{
		"no entries":         {nil, models.TrendNew},
		"single entry":       {[]float64{80}, models.TrendNew},
		"no older window":    {[]float64{90, 80, 70, 60}, models.TrendSteady},
		"up":                 {[]float64{86, 84, 82, 80, 70, 70, 70, 70}, models.TrendUp},
		"down":               {[]float64{60, 60, 60, 60, 70}, models.TrendDown},
		"within band":        {[]float64{104, 104, 104, 104, 100}, models.TrendSteady},
		"exactly +5% steady": {[]float64{105, 105, 105, 105, 100}, models.TrendSteady},
		"exactly -5% steady": {[]float64{95, 95, 95, 95, 100}, models.TrendSteady},
		"beyond 8 ignored":   {[]float64{80, 80, 80, 80, 80, 80, 80, 80, 10, 10}, models.TrendSteady},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, workout.ClassifyTrend(tc.weights))
		})
	}
}

func TestExerciseStats_Empty(t *testing.T) {
	store, _ := newEmptyStore(t)

	stats := store.ExerciseStats("A3")
	assert.Equal(t, "A3", stats.ExerciseID)
	assert.Nil(t, stats.LastWeight)
	assert.Nil(t, stats.LastTime)
	assert.Zero(t, stats.BestWeight)
	assert.Zero(t, stats.BestTime)
	assert.Zero(t, stats.TotalSessions)
	assert.Equal(t, models.TrendNew, stats.Trend)
	assert.Empty(t, stats.RecentEntries)
}

func TestExerciseStats_TrendUp(t *testing.T) {
	store, _ := newEmptyStore(t)

	// four older sessions averaging 70, then 80, 82, 84, 86
	for i, w := range []float64{70, 70, 70, 70, 80, 82, 84, 86} {
		logEntries(t, store, models.WorkoutEntry{ExerciseID: "A3", WeightKg: w, TimeSeconds: 100 + i, Date: day(i + 1)})
	}

	stats := store.ExerciseStats("A3")
	require.NotNil(t, stats.LastWeight)
	assert.Equal(t, 86.0, *stats.LastWeight)
	assert.Equal(t, 107, *stats.LastTime)
	assert.Equal(t, 86.0, stats.BestWeight)
	assert.Equal(t, 107, stats.BestTime)
	assert.Equal(t, 8, stats.TotalSessions)
	assert.Equal(t, models.TrendUp, stats.Trend)
	require.Len(t, stats.RecentEntries, 8)
	assert.Equal(t, 86.0, stats.RecentEntries[0].WeightKg)
}

func TestExerciseStats_BestsAreIndependent(t *testing.T) {
	store, _ := newEmptyStore(t)
	logEntries(t, store,
		models.WorkoutEntry{ExerciseID: "C2", WeightKg: 150, TimeSeconds: 90, Date: day(1)},
		models.WorkoutEntry{ExerciseID: "C2", WeightKg: 140, TimeSeconds: 130, Date: day(2)},
	)

	stats := store.ExerciseStats("C2")
	assert.Equal(t, 150.0, stats.BestWeight)
	assert.Equal(t, 130, stats.BestTime)
	assert.Equal(t, 140.0, *stats.LastWeight)
	assert.Equal(t, models.TrendSteady, stats.Trend)
}

func TestExerciseStats_RecentEntriesCapped(t *testing.T) {
	store, _ := newEmptyStore(t)
	for i := 1; i <= 12; i++ {
		logEntries(t, store, models.WorkoutEntry{ExerciseID: "D6", WeightKg: float64(i), Date: day(i)})
	}

	stats := store.ExerciseStats("D6")
	require.Len(t, stats.RecentEntries, 10)
	assert.Equal(t, 12.0, stats.RecentEntries[0].WeightKg)
	assert.Equal(t, 3.0, stats.RecentEntries[9].WeightKg)
}

func TestAllStats_RosterOrder(t *testing.T) {
	store, _ := newEmptyStore(t)

	all := store.AllStats()
	require.Len(t, all, len(models.Exercises))
	for i, ex := range models.Exercises {
		assert.Equal(t, ex.ID, all[i].ExerciseID)
	}
}

func TestSessions(t *testing.T) {
	store, _ := newEmptyStore(t)
	logEntries(t, store,
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80, TimeSeconds: 120, Date: day(1)},
		models.WorkoutEntry{ExerciseID: "B6", WeightKg: 180, TimeSeconds: 100, Date: day(1).Add(time.Hour)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 82, TimeSeconds: 110, Date: day(3)},
		models.WorkoutEntry{ExerciseID: "C2", WeightKg: 140, TimeSeconds: 125, Date: day(1).Add(-time.Hour)},
	)

	sessions := store.Sessions()
	require.Len(t, sessions, 2)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), sessions[0].Date)
	assert.Equal(t, 1, sessions[0].TotalSets)
	assert.Equal(t, 82.0, sessions[0].TotalVolume)
	assert.Equal(t, 110.0, sessions[0].AvgTime)

	first := sessions[1]
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 3, first.TotalSets)
	assert.Equal(t, 400.0, first.TotalVolume)
	assert.InDelta(t, 115.0, first.AvgTime, 1e-9)
	// store order inside a session
	assert.Equal(t, []string{"A3", "B6", "C2"}, []string{first.Entries[0].ExerciseID, first.Entries[1].ExerciseID, first.Entries[2].ExerciseID})
}

func TestSessions_Empty(t *testing.T) {
	store, _ := newEmptyStore(t)
	assert.Empty(t, store.Sessions())
}

func TestSummary(t *testing.T) {
	store, _ := newEmptyStore(t)
	logEntries(t, store,
		// older sessions, outside the last 7 days
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 70, Date: day(1)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 70, Date: day(2)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 70, Date: day(3)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 70, Date: day(4)},
		models.WorkoutEntry{ExerciseID: "B6", WeightKg: 190, Date: day(4)},
		// this week
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80, Date: day(10)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 82, Date: day(12)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 84, Date: day(14)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 86, Date: day(15)},
		models.WorkoutEntry{ExerciseID: "B6", WeightKg: 180, Date: day(15)},
	)

	summary := store.Summary()
	assert.Equal(t, 8, summary.TotalSessions)
	// the week starts on the 8th at 18:00
	assert.Equal(t, 4, summary.ThisWeek)
	assert.Equal(t, 1, summary.Improving)
	// A3 is at its best, B6 is below its 190
	assert.Equal(t, 1, summary.PersonalBests)
}
