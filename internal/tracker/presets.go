package tracker

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/models"
)

var validate = validator.New()

// Settings returns a copy of the current settings
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSettings(s.settings)
}

// UpdateSettings validates and replaces the settings
func (s *Store) UpdateSettings(settings models.Settings) error {
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = cloneSettings(settings)
	log.Debug("settings updated")

	return s.saveSettings()
}

// Presets returns the configured presets
func (s *Store) Presets() []models.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Preset, len(s.settings.Presets))
	copy(out, s.settings.Presets)
	return out
}

// Preset looks a preset up by id
func (s *Store) Preset(id string) (models.Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.settings.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return models.Preset{}, false
}

// AddPreset stores a new preset under a freshly generated id
func (s *Store) AddPreset(preset models.Preset) (models.Preset, error) {
	if err := validate.Struct(preset); err != nil {
		return models.Preset{}, fmt.Errorf("invalid preset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	preset.ID = s.newID()
	s.settings.Presets = append(s.settings.Presets, preset)
	log.Debugf("added preset %s (%s)", preset.ID, preset.Name)

	return preset, s.saveSettings()
}

// DeletePreset removes a preset. Items logged with it keep the dangling id.
func (s *Store) DeletePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.settings.Presets {
		if p.ID == id {
			s.settings.Presets = append(s.settings.Presets[:i], s.settings.Presets[i+1:]...)
			log.Debugf("deleted preset %s", id)
			return s.saveSettings()
		}
	}
	return nil
}

func cloneSettings(in models.Settings) models.Settings {
	out := in
	out.Presets = make([]models.Preset, len(in.Presets))
	copy(out.Presets, in.Presets)
	if in.DailyLimit != nil {
		l := *in.DailyLimit
		out.DailyLimit = &l
	}
	if in.TimelineCalculation != nil {
		tc := *in.TimelineCalculation
		out.TimelineCalculation = &tc
	}
	if in.Notifications.ReminderTimes != nil {
		out.Notifications.ReminderTimes = append([]string(nil), in.Notifications.ReminderTimes...)
	}
	return out
}
