package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/logbook/internal/models"
)

// KV is the local key-value persistence port used by the stores
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// KVStore keeps key-value pairs in a SQLite table
type KVStore struct {
	db *gorm.DB
}

// Get returns the value stored under key. A missing key is not an error.
func (s *KVStore) Get(key string) (string, bool, error) {
	var pair models.KVPair
	err := s.db.Where("name = ?", key).First(&pair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return pair.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *KVStore) Set(key, value string) error {
	pair := models.KVPair{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pair).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *KVStore) Delete(key string) error {
	if err := s.db.Where("name = ?", key).Delete(&models.KVPair{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Keys lists all stored keys in ascending order
func (s *KVStore) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&models.KVPair{}).Order("name ASC").Pluck("name", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Close closes the database connection
func (s *KVStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ KV = (*KVStore)(nil)
var _ KV = (*MemoryKV)(nil)
