package workout

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/dates"
	"github.com/balkashynov/logbook/internal/models"
)

type historicalSet struct {
	exerciseID  string
	weightKg    float64
	timeSeconds int
}

type historicalSession struct {
	year  int
	month time.Month
	day   int
	sets  []historicalSet
}

// history is the training log kept on paper before the app existed
var history = []historicalSession{
	{
		year: 2026, month: time.January, day: 21,
		sets: []historicalSet{
			{"A3", 80, 120},
			{"B6", 180, 120},
			{"F3.1", 120, 120},
			{"F2.1", 50, 120},
			{"C2", 140, 120},
			{"C5", 60, 120},
			{"D6", 80, 120},
			{"J1", 40, 120},
		},
	},
	{
		year: 2026, month: time.January, day: 23,
		sets: []historicalSet{
			{"A3", 82, 120},
			{"B6", 184, 120},
			{"F3.1", 126, 120},
			{"F2.1", 54, 120},
			{"C2", 150, 120},
			{"C5", 64, 120},
			{"D6", 100, 120},
			{"J1", 46, 120},
		},
	},
}

// HistoricalEntries builds the paper-log entries, dated local midnight in loc
func HistoricalEntries(loc *time.Location, newID func() string) []models.WorkoutEntry {
	var entries []models.WorkoutEntry
	for _, session := range history {
		date := time.Date(session.year, session.month, session.day, 0, 0, 0, 0, loc)
		for _, set := range session.sets {
			entries = append(entries, models.WorkoutEntry{
				ID:          newID(),
				Date:        date,
				ExerciseID:  set.exerciseID,
				WeightKg:    set.weightKg,
				TimeSeconds: set.timeSeconds,
			})
		}
	}
	return entries
}

// installHistory seeds an empty store. Called with s.mu held.
func (s *Store) installHistory() error {
	s.entries = HistoricalEntries(s.loc, s.newID)
	if err := s.saveEntries(); err != nil {
		return err
	}
	log.Infof("seeded %d historical workout entries", len(s.entries))
	return s.kv.Set(SeededKey, "true")
}

// mergeHistory adds historical entries for days not present yet.
// Called with s.mu held.
func (s *Store) mergeHistory() error {
	existing := map[string]bool{}
	for _, e := range s.entries {
		existing[dates.DayKey(e.Date, s.loc)] = true
	}

	added := 0
	for _, e := range HistoricalEntries(s.loc, s.newID) {
		if existing[dates.DayKey(e.Date, s.loc)] {
			continue
		}
		s.entries = append(s.entries, e)
		added++
	}

	if added > 0 {
		if err := s.saveEntries(); err != nil {
			return err
		}
		log.Infof("merged %d historical workout entries", added)
	}
	return s.kv.Set(SeededKey, "true")
}
