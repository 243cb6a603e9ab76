// migration.go
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
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/localnerve/shift-schedule/internal/models"
	"github.com/localnerve/shift-schedule/internal/types"
)

// OutcomeKind tells what a legacy migration attempt did
type OutcomeKind int

const (
	// OutcomeSkipped means there was no legacy file to migrate
	OutcomeSkipped OutcomeKind = iota
	// OutcomeMigrated means the legacy file was imported and retired
	OutcomeMigrated
	// OutcomeFailed means the attempt stopped early; the legacy file is still in place
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMigrated:
		return "migrated"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// MigrationOutcome is the result of MigrateLegacy
type MigrationOutcome struct {
	Kind       OutcomeKind
	Inserted   int64
	BackupPath string
	Err        error
}

func (o MigrationOutcome) String() string {
	switch o.Kind {
	case OutcomeMigrated:
		return fmt.Sprintf("migrated %d rows, legacy file moved to %s", o.Inserted, o.BackupPath)
	case OutcomeFailed:
		return fmt.Sprintf("failed: %v", o.Err)
	}
	return o.Kind.String()
}

// LegacySource locates the legacy schedule file and names its backup
type LegacySource struct {
	Path         string
	BackupSuffix string
}

// BackupPath is where the legacy file goes once it has been imported
func (s LegacySource) BackupPath() string {
	return s.Path + s.BackupSuffix
}

// LegacyImporter receives the legacy document. Store implements it.
type LegacyImporter interface {
	ImportLegacy(ctx context.Context, doc models.Document, run *models.MigrationRun) (int64, error)
}

// ReadLegacyDocument parses the legacy schedule file. Empty content and a
// JSON null both read as an empty document. Unparsable content wraps
// types.ErrCorruptLegacyData.
func ReadLegacyDocument(path string) (models.Document, error) {
	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.Document{}, nil
	}

	doc, err := models.ParseDocument(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrCorruptLegacyData, path, err)
	}
	return doc, nil
}

// MigrateLegacy imports the legacy schedule file into importer once.
//
// A missing file is skipped. A corrupt file, or an existing backup, fails the
// attempt before anything is written. Rows already present are left alone,
// so an attempt interrupted before the rename can simply run again. Renaming
// the file to its backup path is the last step and marks the migration done.
func MigrateLegacy(ctx context.Context, src LegacySource, importer LegacyImporter) MigrationOutcome {
	outcome := migrateLegacy(ctx, src, importer)

	switch outcome.Kind {
	case OutcomeFailed:
		log.Printf("Legacy schedule migration from %s failed, will retry on next start: %v", src.Path, outcome.Err)
	case OutcomeMigrated:
		log.Printf("Legacy schedule migration from %s: %s", src.Path, outcome)
	}

	return outcome
}

func migrateLegacy(ctx context.Context, src LegacySource, importer LegacyImporter) MigrationOutcome {
	if _, err := os.Stat(src.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return MigrationOutcome{Kind: OutcomeSkipped}
		}
		return failed(fmt.Errorf("%w: stat legacy file: %w", types.ErrStorageUnavailable, err))
	}

	doc, err := ReadLegacyDocument(src.Path)
	if err != nil {
		return failed(err)
	}

	backupPath := src.BackupPath()
	if _, err := os.Lstat(backupPath); err == nil {
		return failed(fmt.Errorf("%w: %s", types.ErrBackupExists, backupPath))
	} else if !errors.Is(err, os.ErrNotExist) {
		return failed(fmt.Errorf("%w: stat legacy backup: %w", types.ErrStorageUnavailable, err))
	}

	var inserted int64
	if len(doc) > 0 {
		summary, err := models.NewJSON(doc.MemberCounts())
		if err != nil {
			return failed(err)
		}

		run := &models.MigrationRun{
			ID:         uuid.NewString(),
			LegacyPath: src.Path,
			BackupPath: backupPath,
			Summary:    summary,
		}
		inserted, err = importer.ImportLegacy(ctx, doc, run)
		if err != nil {
			return failed(err)
		}
	}

	if err := os.Rename(src.Path, backupPath); err != nil {
		return failed(fmt.Errorf("rename legacy file: %w", err))
	}

	return MigrationOutcome{
		Kind:       OutcomeMigrated,
		Inserted:   inserted,
		BackupPath: backupPath,
	}
}

func failed(err error) MigrationOutcome {
	return MigrationOutcome{Kind: OutcomeFailed, Err: err}
}
