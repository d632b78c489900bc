package workout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/models"
)

// Snapshot is the export document of the workout logger
type Snapshot struct {
	Entries    []models.WorkoutEntry `json:"entries"`
	ExportDate time.Time             `json:"exportDate"`
}

// Export renders all entries as pretty-printed JSON
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	snap := Snapshot{
		Entries:    newestFirst(s.entries),
		ExportDate: s.now(),
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// Import replaces all entries with the ones in data. Both the export
// document and a bare array of entries are accepted; entries without an id
// get a fresh one. On a parse failure the store is left untouched.
func (s *Store) Import(data []byte) error {
	entries, err := decodeEntries(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = s.newID()
		}
	}
	s.entries = nonNilEntries(entries)
	log.Debugf("imported %d workout entries", len(s.entries))

	return s.saveEntries()
}

func decodeEntries(data []byte) ([]models.WorkoutEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
	}

	switch trimmed[0] {
	case '[':
		var entries []models.WorkoutEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
		}
		return entries, nil
	case '{':
		var doc struct {
			Entries *[]models.WorkoutEntry `json:"entries"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
		}
		if doc.Entries == nil {
			return nil, fmt.Errorf("%w: missing entries", ErrInvalidSnapshot)
		}
		return *doc.Entries, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON object or array", ErrInvalidSnapshot)
	}
}
