// Package tracker is the items tracker: a store of timestamped items logged
// against an optional daily limit, plus the day and period aggregation built
// on top of it.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/db"
	"github.com/balkashynov/logbook/internal/models"
)

const (
	ItemsKey        = "tracker_items"
	SettingsKey     = "tracker_settings"
	AchievementsKey = "tracker_achievements"
)

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrUnknownPeriod   = errors.New("unknown report period")
)

// Store owns the tracked items, the settings and the achievements.
// Every mutation is written through to the KV store right away.
type Store struct {
	mu  sync.RWMutex
	kv  db.KV
	cfg models.AppConfig

	items        []models.TrackedItem
	settings     models.Settings
	achievements []models.Achievement

	now   func() time.Time
	loc   *time.Location
	newID func() string
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the time zone calendar days are computed in
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// New creates an empty store. Call Load before using it.
func New(kv db.KV, cfg models.AppConfig, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		cfg:      cfg,
		items:    []models.TrackedItem{},
		settings: defaultSettings(cfg),
		now:      time.Now,
		loc:      time.Local,
		newID:    uuid.NewString,
	}
	s.achievements = cloneAchievements(cfg.Achievements)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultSettings are used until the user saves settings of their own
func defaultSettings(cfg models.AppConfig) models.Settings {
	presets := make([]models.Preset, len(cfg.DefaultPresets))
	copy(presets, cfg.DefaultPresets)
	return models.Settings{
		Presets: presets,
		Theme:   "system",
		Notifications: models.Notifications{
			Enabled:      false,
			LimitWarning: true,
		},
	}
}

// Load reads items, settings and achievements from the KV store.
// Missing keys keep their defaults.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.TrackedItem
	found, err := s.read(ItemsKey, &items)
	if err != nil {
		return err
	}
	if found {
		s.items = nonNilItems(items)
	}

	var settings models.Settings
	found, err = s.read(SettingsKey, &settings)
	if err != nil {
		return err
	}
	if found {
		s.settings = settings
	}

	var achievements []models.Achievement
	found, err = s.read(AchievementsKey, &achievements)
	if err != nil {
		return err
	}
	if found {
		s.achievements = achievements
	}

	log.Debugf("tracker loaded: %d items, %d presets, %d achievements",
		len(s.items), len(s.settings.Presets), len(s.achievements))
	return nil
}

// Config returns the app configuration the store was created with
func (s *Store) Config() models.AppConfig {
	return s.cfg
}

// Location returns the time zone used for calendar days
func (s *Store) Location() *time.Location {
	return s.loc
}

func (s *Store) read(key string, dst any) (bool, error) {
	raw, found, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		log.Errorf("failed to save %s: %s", key, err)
		return err
	}
	return nil
}

func (s *Store) saveItems() error {
	return s.write(ItemsKey, s.items)
}

func (s *Store) saveSettings() error {
	return s.write(SettingsKey, s.settings)
}

func (s *Store) saveAchievements() error {
	return s.write(AchievementsKey, s.achievements)
}

func nonNilItems(items []models.TrackedItem) []models.TrackedItem {
	if items == nil {
		return []models.TrackedItem{}
	}
	return items
}
