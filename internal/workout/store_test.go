package workout_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

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

var errBoom = errors.New("boom")

var refNow = time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

// kvMock is a MemoryKV that counts writes and can be told to fail them
type kvMock struct {
	*db.MemoryKV
	setCalls map[string]int
	setErr   error
}

func newKVMock() *kvMock {
	return &kvMock{MemoryKV: db.NewMemoryKV(), setCalls: map[string]int{}}
}

func (m *kvMock) Set(key, value string) error {
	m.setCalls[key]++
	if m.setErr != nil {
		return m.setErr
	}
	return m.MemoryKV.Set(key, value)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newStore(kv db.KV) *workout.Store {
	return workout.New(kv,
		workout.WithClock(func() time.Time { return refNow }),
		workout.WithLocation(time.UTC),
		workout.WithIDGenerator(sequentialIDs()),
	)
}

// newEmptyStore returns a loaded store without the historical entries
func newEmptyStore(t *testing.T) (*workout.Store, *kvMock) {
	t.Helper()
	kv := newKVMock()
	require.NoError(t, kv.MemoryKV.Set(workout.EntriesKey, `[]`))
	require.NoError(t, kv.MemoryKV.Set(workout.SeededKey, "true"))
	store := newStore(kv)
	require.NoError(t, store.Load())
	return store, kv
}

func day(n int) time.Time {
	return time.Date(2026, 3, n, 9, 0, 0, 0, time.UTC)
}

func logEntries(t *testing.T, store *workout.Store, entries ...models.WorkoutEntry) []models.WorkoutEntry {
	t.Helper()
	var out []models.WorkoutEntry
	for _, e := range entries {
		added, err := store.Add(e)
		require.NoError(t, err)
		out = append(out, added)
	}
	return out
}

func TestStore_AddGetDelete(t *testing.T) {
	store, kv := newEmptyStore(t)

	added := logEntries(t, store, models.WorkoutEntry{ID: "mine", ExerciseID: "A3", WeightKg: 80, TimeSeconds: 110, Date: day(1)})[0]
	assert.Equal(t, "id-1", added.ID)
	assert.Equal(t, 1, kv.setCalls[workout.EntriesKey])

	got, found := store.Get("id-1")
	require.True(t, found)
	assert.Equal(t, added, got)

	require.NoError(t, store.Delete("missing"))
	assert.Equal(t, 1, kv.setCalls[workout.EntriesKey])

	require.NoError(t, store.Delete("id-1"))
	assert.Empty(t, store.Entries())
	assert.Equal(t, 2, kv.setCalls[workout.EntriesKey])

	// deleting the last entry is persisted too
	raw, _, err := kv.Get(workout.EntriesKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func TestStore_Update(t *testing.T) {
	store, kv := newEmptyStore(t)
	added := logEntries(t, store, models.WorkoutEntry{ExerciseID: "C2", WeightKg: 140, TimeSeconds: 120, Date: day(2)})[0]

	weight := 145.0
	notes := "seat 3"
	require.NoError(t, store.Update(added.ID, workout.EntryPatch{WeightKg: &weight, Notes: &notes}))

	got, _ := store.Get(added.ID)
	assert.Equal(t, 145.0, got.WeightKg)
	assert.Equal(t, "seat 3", got.Notes)
	assert.Equal(t, 120, got.TimeSeconds)
	assert.Equal(t, "C2", got.ExerciseID)

	writes := kv.setCalls[workout.EntriesKey]
	require.NoError(t, store.Update("missing", workout.EntryPatch{WeightKg: &weight}))
	assert.Equal(t, writes, kv.setCalls[workout.EntriesKey])
}

func TestStore_PersistenceErrorKeepsMutation(t *testing.T) {
	store, kv := newEmptyStore(t)
	kv.setErr = errBoom

	added, err := store.Add(models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80})
	assert.ErrorIs(t, err, errBoom)
	_, found := store.Get(added.ID)
	assert.True(t, found)
	assert.Equal(t, refNow, added.Date)
}

func TestStore_ExerciseEntriesAndLast(t *testing.T) {
	store, _ := newEmptyStore(t)
	logEntries(t, store,
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 80, Date: day(1)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 84, Date: day(5)},
		models.WorkoutEntry{ExerciseID: "B6", WeightKg: 180, Date: day(6)},
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 82, Date: day(3)},
	)

	entries := store.ExerciseEntries("A3")
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{84, 82, 80}, []float64{entries[0].WeightKg, entries[1].WeightKg, entries[2].WeightKg})

	last, found := store.LastEntry("A3")
	require.True(t, found)
	assert.Equal(t, 84.0, last.WeightKg)

	_, found = store.LastEntry("J1")
	assert.False(t, found)
}

func TestStore_TodayEntries(t *testing.T) {
	store, _ := newEmptyStore(t)
	logEntries(t, store,
		models.WorkoutEntry{ExerciseID: "A3", WeightKg: 1, Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		models.WorkoutEntry{ExerciseID: "B6", WeightKg: 2, Date: time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)},
		models.WorkoutEntry{ExerciseID: "C2", WeightKg: 3, Date: time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)},
		models.WorkoutEntry{ExerciseID: "C5", WeightKg: 4, Date: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
	)

	today := store.TodayEntries()
	require.Len(t, today, 2)
	assert.Equal(t, "A3", today[0].ExerciseID)
	assert.Equal(t, "C2", today[1].ExerciseID)
}

func TestExerciseLookup(t *testing.T) {
	ex, found := workout.Exercise("f3.1")
	require.True(t, found)
	assert.Equal(t, "Back Extension", ex.Name)

	assert.Equal(t, "Leg Press", workout.ExerciseName("A3"))
	assert.Equal(t, "Z9", workout.ExerciseName("Z9"))
}

func TestQuickLogValues(t *testing.T) {
	weight, seconds := workout.QuickLogValues("82.5", "90")
	assert.Equal(t, 82.5, weight)
	assert.Equal(t, 90, seconds)

	weight, seconds = workout.QuickLogValues("heavy", "")
	assert.Equal(t, 0.0, weight)
	assert.Equal(t, 120, seconds)

	_, seconds = workout.QuickLogValues("80kg", "0")
	assert.Equal(t, 120, seconds)
}
