// schedule_store.go
//
// A shift schedule data service backed by a relational store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of shift-schedule.
// shift-schedule is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// shift-schedule is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with shift-schedule.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"fmt"

	"github.com/localnerve/shift-schedule/internal/database"
	"github.com/localnerve/shift-schedule/internal/models"
	"github.com/localnerve/shift-schedule/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

const insertBatchSize = 500

// Store keeps the schedule as one row per (date, shift type, member)
type Store struct {
	db    *gorm.DB
	guard *Guard
}

// NewStore creates a store over db. All calls through the store hold guard.
func NewStore(db *gorm.DB, guard *Guard) *Store {
	return &Store{db: db, guard: guard}
}

// Initialize creates the schedule tables if they are missing. It is safe to
// call on every start.
func (s *Store) Initialize(ctx context.Context) error {
	err := s.guard.Do(func() error {
		return database.AutoMigrate(s.db.WithContext(ctx))
	})
	if err != nil {
		return fmt.Errorf("%w: initialize schedule tables: %w", types.ErrStorageUnavailable, err)
	}
	return nil
}

// Load reads every row ordered by date, shift type and insertion order and
// folds them into a Document. An empty store yields an empty, non-nil Document.
func (s *Store) Load(ctx context.Context) (models.Document, error) {
	var entries []models.ScheduleEntry

	err := s.guard.Do(func() error {
		return s.db.WithContext(ctx).
			Clauses(hints.Comment("select", "schedule:load")).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "shift_type"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
			Find(&entries).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: load schedule: %w", types.ErrStorageUnavailable, err)
	}

	return models.FoldEntries(entries), nil
}

// ReplaceAll swaps the whole row set for the rows implied by doc. The delete
// and inserts share one transaction; on any failure nothing changes and the
// error wraps types.ErrWriteFailed.
func (s *Store) ReplaceAll(ctx context.Context, doc models.Document) error {
	entries := doc.Entries()

	err := s.guard.Do(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(&models.ScheduleEntry{}).Error; err != nil {
				return err
			}

			if len(entries) == 0 {
				return nil
			}

			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&entries, insertBatchSize).Error
		})
	})
	if err != nil {
		return fmt.Errorf("%w: replace schedule: %w", types.ErrWriteFailed, err)
	}

	return nil
}

// ImportLegacy adds the rows implied by doc, skipping rows that already
// exist, and records run in the same transaction. It returns the number of
// rows actually inserted.
func (s *Store) ImportLegacy(ctx context.Context, doc models.Document, run *models.MigrationRun) (int64, error) {
	entries := doc.Entries()
	var inserted int64

	err := s.guard.Do(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if len(entries) > 0 {
				result := tx.Clauses(clause.OnConflict{DoNothing: true}).
					CreateInBatches(&entries, insertBatchSize)
				if result.Error != nil {
					return result.Error
				}
				inserted = result.RowsAffected
			}

			run.InsertedRows = inserted
			return tx.Create(run).Error
		})
	})
	if err != nil {
		return 0, fmt.Errorf("%w: import legacy schedule: %w", types.ErrWriteFailed, err)
	}

	return inserted, nil
}

// Count returns the number of stored rows
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.guard.Do(func() error {
		return s.db.WithContext(ctx).Model(&models.ScheduleEntry{}).Count(&count).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: count schedule rows: %w", types.ErrStorageUnavailable, err)
	}
	return count, nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}
	return nil
}
