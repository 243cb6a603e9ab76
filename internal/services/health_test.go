package services_test

import (
	"context"
	"net"
	"strconv"
	"testing"

	"github.com/localnerve/shift-schedule/internal/database"
	"github.com/localnerve/shift-schedule/internal/models"
	"github.com/localnerve/shift-schedule/internal/services"
	"github.com/localnerve/shift-schedule/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenPort(t *testing.T) (net.Listener, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln, strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func TestHealthCheckHealthy(t *testing.T) {
	ctx := context.Background()
	cfg := testutil.SQLiteConfig(t)
	store, _ := testutil.OpenStore(t, cfg)
	require.NoError(t, store.ReplaceAll(ctx, models.Document{"2024-01-01": {"morning": {"Alice", "Bob"}}}))

	ln, port := listenPort(t)
	defer ln.Close()
	cfg.Port = port

	result := services.HealthCheck(ctx, cfg, store)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Server)
	assert.Equal(t, "2", result.Details["schedule_rows"])
	assert.Equal(t, "sqlite", result.Details["database_type"])
	assert.Empty(t, result.ErrorMessage)
}

func TestHealthCheckUnhealthy(t *testing.T) {
	ctx := context.Background()
	cfg := testutil.SQLiteConfig(t)
	store, db := testutil.OpenStore(t, cfg)
	require.NoError(t, database.Close(db))

	ln, port := listenPort(t)
	require.NoError(t, ln.Close())
	cfg.Port = port

	result := services.HealthCheck(ctx, cfg, store)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.Equal(t, "unreachable", result.Server)
	assert.Contains(t, result.Details, "database_ping_error")
	assert.Contains(t, result.Details, "server_error")
	assert.Contains(t, result.ErrorMessage, "Database ping failed")
	assert.Contains(t, result.ErrorMessage, "Server ping failed")
}
