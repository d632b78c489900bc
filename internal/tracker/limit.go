package tracker

import (
	"time"

	"github.com/balkashynov/logbook/internal/models"
)

// DefaultWarningThreshold is the percentage of the limit that counts as
// "near" when the limit has no threshold of its own
const DefaultWarningThreshold = 80.0

// LimitStatus compares date's daily total against the configured limit
func (s *Store) LimitStatus(date time.Time) models.LimitStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := models.LimitStatus{Current: s.dailyTotal(date)}

	limit := s.settings.DailyLimit
	if limit == nil || limit.MaxAmount <= 0 {
		return status
	}

	l := *limit
	status.Limit = &l
	status.Percentage = status.Current / l.MaxAmount * 100
	status.Remaining = l.MaxAmount - status.Current
	if status.Remaining < 0 {
		status.Remaining = 0
	}

	threshold := l.WarningThreshold
	if threshold <= 0 {
		threshold = DefaultWarningThreshold
	}
	status.OverLimit = status.Percentage >= 100
	status.NearLimit = !status.OverLimit && status.Percentage >= threshold

	return status
}
