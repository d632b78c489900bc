package workout

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/dates"
	"github.com/balkashynov/logbook/internal/models"
)

// EntryPatch holds the fields to change on an entry. Nil fields are left alone.
type EntryPatch struct {
	Date        *time.Time
	ExerciseID  *string
	WeightKg    *float64
	TimeSeconds *int
	Notes       *string
}

// Add stores a new entry under a freshly generated id and returns it
func (s *Store) Add(entry models.WorkoutEntry) (models.WorkoutEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.newID()
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	s.entries = append(s.entries, entry)
	log.Debugf("logged %s: %gkg for %ds", entry.ExerciseID, entry.WeightKg, entry.TimeSeconds)

	return entry, s.saveEntries()
}

// Delete removes the entry with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	log.Debugf("deleted workout entry %s", id)

	return s.saveEntries()
}

// Update merges patch into the entry with the given id. Unknown ids are ignored.
func (s *Store) Update(id string, patch EntryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	entry := &s.entries[idx]
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.ExerciseID != nil {
		entry.ExerciseID = *patch.ExerciseID
	}
	if patch.WeightKg != nil {
		entry.WeightKg = *patch.WeightKg
	}
	if patch.TimeSeconds != nil {
		entry.TimeSeconds = *patch.TimeSeconds
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	log.Debugf("updated workout entry %s", id)

	return s.saveEntries()
}

func (s *Store) Get(id string) (models.WorkoutEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.WorkoutEntry{}, false
	}
	return s.entries[idx], true
}

// Entries returns all entries, most recent first
func (s *Store) Entries() []models.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.entries)
}

// ExerciseEntries returns the entries of one exercise, most recent first
func (s *Store) ExerciseEntries(exerciseID string) []models.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exerciseEntries(exerciseID)
}

func (s *Store) exerciseEntries(exerciseID string) []models.WorkoutEntry {
	var out []models.WorkoutEntry
	for _, e := range s.entries {
		if e.ExerciseID == exerciseID {
			out = append(out, e)
		}
	}
	return newestFirst(out)
}

// LastEntry returns the most recent entry of an exercise
func (s *Store) LastEntry(exerciseID string) (models.WorkoutEntry, bool) {
	entries := s.ExerciseEntries(exerciseID)
	if len(entries) == 0 {
		return models.WorkoutEntry{}, false
	}
	return entries[0], true
}

// TodayEntries returns the entries logged on the current calendar day, in
// the order they were logged
func (s *Store) TodayEntries() []models.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := dates.StartOfDay(s.now(), s.loc)
	end := start.AddDate(0, 0, 1)

	var out []models.WorkoutEntry
	for _, e := range s.entries {
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func newestFirst(entries []models.WorkoutEntry) []models.WorkoutEntry {
	out := make([]models.WorkoutEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
