// Package workout is the gym workout logger: a store of weight/time entries
// on a fixed machine roster, with per-exercise trends and daily sessions.
package workout

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
	EntriesKey = "workout_entries"
	SeededKey  = "workout_seeded"
)

var ErrInvalidSnapshot = errors.New("invalid workout snapshot")

// Store owns the workout entries and writes them through on every change
type Store struct {
	mu      sync.RWMutex
	kv      db.KV
	entries []models.WorkoutEntry

	now   func() time.Time
	loc   *time.Location
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the time zone sessions and "today" are computed in
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

func New(kv db.KV, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		entries: []models.WorkoutEntry{},
		now:     time.Now,
		loc:     time.Local,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the time zone used for calendar days
func (s *Store) Location() *time.Location {
	return s.loc
}

// Load reads the persisted entries and runs the one-time historical seed
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.kv.Get(EntriesKey)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", EntriesKey, err)
	}
	if !found {
		return s.installHistory()
	}

	var entries []models.WorkoutEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("failed to decode %s: %w", EntriesKey, err)
	}
	s.entries = nonNilEntries(entries)

	_, seeded, err := s.kv.Get(SeededKey)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", SeededKey, err)
	}
	if !seeded {
		if err := s.mergeHistory(); err != nil {
			return err
		}
	}

	log.Debugf("workout loaded: %d entries", len(s.entries))
	return nil
}

func (s *Store) saveEntries() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", EntriesKey, err)
	}
	if err := s.kv.Set(EntriesKey, string(data)); err != nil {
		log.Errorf("failed to save %s: %s", EntriesKey, err)
		return err
	}
	return nil
}

func nonNilEntries(entries []models.WorkoutEntry) []models.WorkoutEntry {
	if entries == nil {
		return []models.WorkoutEntry{}
	}
	return entries
}
