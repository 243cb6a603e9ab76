package types

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the schedule store and migration.
// Callers match them with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrStorageUnavailable means the storage location could not be created or opened.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedInput means a write payload was not a schedule document.
	ErrMalformedInput = errors.New("malformed input")

	// ErrCorruptLegacyData means the legacy schedule file exists but cannot be parsed.
	ErrCorruptLegacyData = errors.New("corrupt legacy data")

	// ErrWriteFailed means a replace could not complete and was rolled back.
	ErrWriteFailed = errors.New("write failed")

	// ErrBackupExists means the legacy backup path is already taken.
	ErrBackupExists = errors.New("legacy backup already exists")
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
