package workout

import (
	"sort"

	"github.com/balkashynov/logbook/internal/dates"
	"github.com/balkashynov/logbook/internal/models"
)

// Sessions groups the entries by calendar day, most recent day first.
// TotalVolume is the plain sum of the weights of the day.
func (s *Store) Sessions() []models.WorkoutSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions()
}

func (s *Store) sessions() []models.WorkoutSession {
	byDay := map[string]int{}
	var sessions []models.WorkoutSession

	for _, e := range s.entries {
		key := dates.DayKey(e.Date, s.loc)
		idx, ok := byDay[key]
		if !ok {
			idx = len(sessions)
			byDay[key] = idx
			sessions = append(sessions, models.WorkoutSession{Date: dates.StartOfDay(e.Date, s.loc)})
		}
		session := &sessions[idx]
		session.Entries = append(session.Entries, e)
		session.TotalVolume += e.WeightKg
		session.TotalSets++
	}

	for i := range sessions {
		var total int
		for _, e := range sessions[i].Entries {
			total += e.TimeSeconds
		}
		sessions[i].AvgTime = float64(total) / float64(sessions[i].TotalSets)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	return sessions
}
