package storage

import "time"

// SnapshotModel is the GORM model for the snapshots table.
// Value holds the JSON encoding of whatever the caller saved under Key.
type SnapshotModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time `gorm:"index:idx_snapshots_updated_at"`
	Value     string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SnapshotModel) TableName() string { return "snapshots" }
