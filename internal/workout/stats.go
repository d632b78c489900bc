package workout

import (
	"github.com/balkashynov/logbook/internal/models"
)

const (
	trendWindow   = 4
	recentEntries = 10
	// recent average must move more than 5% away from the older one
	trendBand = 0.05
)

// ClassifyTrend compares the average of the 4 newest weights with the
// average of the 4 before them. weights must be ordered newest first.
func ClassifyTrend(weights []float64) models.Trend {
	if len(weights) < 2 {
		return models.TrendNew
	}

	// no older window to compare against
	if len(weights) <= trendWindow {
		return models.TrendSteady
	}
	recent := weights[:trendWindow]
	older := weights[trendWindow:min(2*trendWindow, len(weights))]

	avgRecent := average(recent)
	avgOlder := average(older)
	switch {
	case avgRecent > avgOlder*(1+trendBand):
		return models.TrendUp
	case avgRecent < avgOlder*(1-trendBand):
		return models.TrendDown
	default:
		return models.TrendSteady
	}
}

// ExerciseStats summarises the full history of one exercise
func (s *Store) ExerciseStats(exerciseID string) models.ExerciseStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exerciseStats(exerciseID)
}

// AllStats returns the stats of every roster exercise, in roster order
func (s *Store) AllStats() []models.ExerciseStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]models.ExerciseStats, 0, len(models.Exercises))
	for _, ex := range models.Exercises {
		stats = append(stats, s.exerciseStats(ex.ID))
	}
	return stats
}

func (s *Store) exerciseStats(exerciseID string) models.ExerciseStats {
	entries := s.exerciseEntries(exerciseID)
	stats := models.ExerciseStats{
		ExerciseID:    exerciseID,
		Trend:         models.TrendNew,
		RecentEntries: []models.WorkoutEntry{},
	}
	if len(entries) == 0 {
		return stats
	}

	last := entries[0]
	lastWeight, lastTime := last.WeightKg, last.TimeSeconds
	stats.LastWeight = &lastWeight
	stats.LastTime = &lastTime

	weights := make([]float64, len(entries))
	stats.BestWeight = entries[0].WeightKg
	stats.BestTime = entries[0].TimeSeconds
	for i, e := range entries {
		weights[i] = e.WeightKg
		stats.BestWeight = max(stats.BestWeight, e.WeightKg)
		stats.BestTime = max(stats.BestTime, e.TimeSeconds)
	}

	stats.TotalSessions = len(entries)
	stats.Trend = ClassifyTrend(weights)
	stats.RecentEntries = entries[:min(recentEntries, len(entries))]
	return stats
}

func average(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
