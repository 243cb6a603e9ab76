package testutil

import (
	"context"
	"testing"

	"github.com/localnerve/shift-schedule/internal/config"
	"github.com/localnerve/shift-schedule/internal/database"
	"github.com/localnerve/shift-schedule/internal/logging"
	"github.com/localnerve/shift-schedule/internal/services"
	"gorm.io/gorm"
)

// SQLiteConfig returns a configuration whose data directory is a fresh temp dir
func SQLiteConfig(t testing.TB) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:               "0",
		StaticDir:          dir,
		DataDir:            dir + "/data",
		LegacyFile:         "schedule.json",
		LegacyBackupSuffix: ".bak",
		DBType:             "sqlite",
		DBFile:             "schedule.db",
		DBConnectionLimit:  1,
		DBLogLevel:         "silent",
	}
}

// OpenStore connects to cfg's database, creates the tables and returns an
// initialized store with its own guard. The connection closes with the test.
func OpenStore(t testing.TB, cfg *config.Config) (*services.Store, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(cfg, logging.GormLogger(testWriter{t}, cfg.DBLogLevel))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	store := services.NewStore(db, services.NewGuard())
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test store: %v", err)
	}
	return store, db
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
