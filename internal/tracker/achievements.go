package tracker

import (
	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/models"
)

// Achievements returns the declared achievements with their unlock state
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAchievements(s.achievements)
}

// UnlockAchievement marks an achievement as unlocked. Unlocking twice keeps
// the first timestamp; unknown ids are ignored.
// Nothing calls this automatically, criteria are never evaluated.
func (s *Store) UnlockAchievement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.achievements {
		a := &s.achievements[i]
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return nil
		}
		now := s.now()
		a.Unlocked = true
		a.UnlockedAt = &now
		log.Debugf("unlocked achievement %s", id)
		return s.saveAchievements()
	}
	return nil
}

func cloneAchievements(in []models.Achievement) []models.Achievement {
	out := make([]models.Achievement, len(in))
	for i, a := range in {
		if a.UnlockedAt != nil {
			t := *a.UnlockedAt
			a.UnlockedAt = &t
		}
		if a.Progress != nil {
			p := *a.Progress
			a.Progress = &p
		}
		out[i] = a
	}
	return out
}
