package models

import (
	"time"
)

// MigrationRun records a completed legacy file import
type MigrationRun struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	LegacyPath   string `gorm:"size:1024;not null"`
	BackupPath   string `gorm:"size:1024;not null"`
	InsertedRows int64  `gorm:"not null;default:0"`
	Summary      JSON
	CreatedAt    time.Time
}

// TableName overrides the table name for MigrationRun
func (MigrationRun) TableName() string {
	return "migration_runs"
}
