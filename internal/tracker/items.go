package tracker

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/logbook/internal/models"
)

// ItemPatch holds the fields to change on an item. Nil fields are left alone.
type ItemPatch struct {
	PresetID   *string
	CustomName *string
	Amount     *float64
	Unit       *string
	Timestamp  *time.Time
	Notes      *string
}

// Add stores a new item under a freshly generated id and returns it.
// Any id set by the caller is replaced.
func (s *Store) Add(item models.TrackedItem) (models.TrackedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID()
	if item.Timestamp.IsZero() {
		item.Timestamp = s.now()
	}
	s.items = append(s.items, item)
	log.Debugf("added item %s (%g %s)", item.ID, item.Amount, item.Unit)

	return item, s.saveItems()
}

// Delete removes the item with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	log.Debugf("deleted item %s", id)

	return s.saveItems()
}

// Update merges patch into the item with the given id. Unknown ids are ignored.
func (s *Store) Update(id string, patch ItemPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	item := &s.items[idx]
	if patch.PresetID != nil {
		item.PresetID = *patch.PresetID
	}
	if patch.CustomName != nil {
		item.CustomName = *patch.CustomName
	}
	if patch.Amount != nil {
		item.Amount = *patch.Amount
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Timestamp != nil {
		item.Timestamp = *patch.Timestamp
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	log.Debugf("updated item %s", id)

	return s.saveItems()
}

// Get returns the item with the given id
func (s *Store) Get(id string) (models.TrackedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.TrackedItem{}, false
	}
	return s.items[idx], true
}

// Items returns all items, most recent first
func (s *Store) Items() []models.TrackedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedByTimestamp(s.items)
}

// DisplayName resolves the label shown for an item
func (s *Store) DisplayName(item models.TrackedItem) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item.PresetID != "" {
		for _, p := range s.settings.Presets {
			if p.ID == item.PresetID {
				return p.Name
			}
		}
		return "Unknown"
	}
	if item.CustomName != "" {
		return item.CustomName
	}
	return "Custom"
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func sortedByTimestamp(items []models.TrackedItem) []models.TrackedItem {
	out := make([]models.TrackedItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
