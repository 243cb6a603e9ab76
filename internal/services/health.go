package services

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/localnerve/shift-schedule/internal/config"
)

const serverPingTimeout = 1500 * time.Millisecond

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Server       string            `json:"server"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck checks the schedule database and the HTTP listener
func HealthCheck(ctx context.Context, cfg *config.Config, store *Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	if err := store.Ping(ctx); err != nil {
		result.fail("database_ping_error", fmt.Sprintf("Database ping failed: %v", err))
		result.Database = "unreachable"
		log.Printf("Health check failed - database ping: %v", err)
	} else if count, err := store.Count(ctx); err != nil {
		result.fail("database_query_error", fmt.Sprintf("Schedule query failed: %v", err))
		result.Database = "error"
		log.Printf("Health check failed - schedule query: %v", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["schedule_rows"] = strconv.FormatInt(count, 10)
	}

	if err := pingServer(ctx, cfg.Port); err != nil {
		result.fail("server_error", fmt.Sprintf("Server ping failed: %v", err))
		result.Server = "unreachable"
		log.Printf("Health check failed - server ping: %v", err)
	} else {
		result.Server = "ok"
		result.Details["server_port"] = cfg.Port
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}

func (r *HealthCheckResult) fail(key, message string) {
	r.Status = "unhealthy"
	r.Details[key] = message
	if r.ErrorMessage == "" {
		r.ErrorMessage = message
	} else {
		r.ErrorMessage += "; " + message
	}
}

// pingServer checks that something accepts TCP connections on the local port
func pingServer(ctx context.Context, port string) error {
	ctx, cancel := context.WithTimeout(ctx, serverPingTimeout)
	defer cancel()

	address := net.JoinHostPort("localhost", port)
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}
