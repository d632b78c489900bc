package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/balkashynov/logbook/internal/models"
)

// Snapshot is the export document of the items tracker
type Snapshot struct {
	Items        []models.TrackedItem `json:"items"`
	Settings     models.Settings      `json:"settings"`
	Achievements []models.Achievement `json:"achievements"`
	ExportDate   time.Time            `json:"exportDate"`
}

// importDoc tells absent sections apart from empty ones
type importDoc struct {
	Items        *[]models.TrackedItem `json:"items"`
	Settings     *models.Settings      `json:"settings"`
	Achievements *[]models.Achievement `json:"achievements"`
}

// Export renders the full state as pretty-printed JSON
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	snap := Snapshot{
		Items:        sortedByTimestamp(s.items),
		Settings:     cloneSettings(s.settings),
		Achievements: cloneAchievements(s.achievements),
		ExportDate:   s.now(),
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// Import replaces every section present in data. A document that does not
// parse leaves the store untouched and returns ErrInvalidSnapshot.
func (s *Store) Import(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidSnapshot)
	}

	var doc importDoc
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if doc.Items != nil {
		s.items = nonNilItems(*doc.Items)
		err = multierr.Append(err, s.saveItems())
	}
	if doc.Settings != nil {
		s.settings = *doc.Settings
		err = multierr.Append(err, s.saveSettings())
	}
	if doc.Achievements != nil {
		s.achievements = cloneAchievements(*doc.Achievements)
		err = multierr.Append(err, s.saveAchievements())
	}
	log.Debugf("imported snapshot: %d items", len(s.items))

	return err
}
