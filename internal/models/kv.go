package models

import "time"

// KVPair is a row of the local key-value storage.
// Values are JSON snapshots written by the stores.
type KVPair struct {
	Key       string    `gorm:"primaryKey;column:name"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name so it does not follow struct renames
func (KVPair) TableName() string {
	return "kv_pairs"
}
