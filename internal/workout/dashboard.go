package workout

import (
	"strings"

	"github.com/balkashynov/logbook/internal/models"
)

// Exercise looks a roster exercise up by id, case-insensitively
func Exercise(id string) (models.Exercise, bool) {
	for _, ex := range models.Exercises {
		if strings.EqualFold(ex.ID, id) {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// ExerciseName returns the display name of an exercise, or the raw id when
// it is not on the roster
func ExerciseName(id string) string {
	if ex, ok := Exercise(id); ok {
		return ex.Name
	}
	return id
}

// Summary computes the headline counters of the dashboard
func (s *Store) Summary() models.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions()
	weekAgo := s.now().AddDate(0, 0, -7)

	summary := models.DashboardSummary{TotalSessions: len(sessions)}
	for _, session := range sessions {
		if !session.Date.Before(weekAgo) {
			summary.ThisWeek++
		}
	}

	for _, ex := range models.Exercises {
		stats := s.exerciseStats(ex.ID)
		if stats.Trend == models.TrendUp {
			summary.Improving++
		}
		if stats.TotalSessions > 0 && *stats.LastWeight == stats.BestWeight {
			summary.PersonalBests++
		}
	}
	return summary
}
