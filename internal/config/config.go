package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port      string
	StaticDir string

	// Storage configuration
	DataDir            string
	LegacyFile         string
	LegacyBackupSuffix string

	// Database configuration
	DBType            string // sqlite, sqlite-pure, mysql, postgres, sqlserver
	DBFile            string
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string

	// Log configuration
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "5000"),
		StaticDir:          getEnv("STATIC_DIR", "public"),
		DataDir:            getEnv("DATA_DIR", "data"),
		LegacyFile:         getEnv("LEGACY_FILE", "schedule.json"),
		LegacyBackupSuffix: getEnv("LEGACY_BACKUP_SUFFIX", ".bak"),
		DBType:             getEnv("DB_TYPE", "sqlite"),
		DBFile:             getEnv("DB_FILE", "schedule.db"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", ""),
		DBDatabase:         getEnv("DB_DATABASE", ""),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:         getEnv("DB_LOG_LEVEL", "warn"),
		LogFile:            getEnv("LOG_FILE", ""),
		LogMaxSizeMB:       getEnvAsInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:      getEnvAsInt("LOG_MAX_BACKUPS", 3),
	}

	if cfg.LegacyBackupSuffix == "" {
		return nil, fmt.Errorf("LEGACY_BACKUP_SUFFIX must not be empty")
	}

	if !cfg.IsFileDatabase() {
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required for DB_TYPE %s", cfg.DBType)
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
		}
	}

	return cfg, nil
}

// LoadEnvFile loads variables from an .env file into the process environment.
// An empty filename is a no-op.
func LoadEnvFile(filename string) error {
	if filename == "" {
		return nil
	}
	if err := godotenv.Load(filename); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", filename, err)
	}
	return nil
}

// IsFileDatabase reports whether the database lives in the data directory
func (c *Config) IsFileDatabase() bool {
	return c.DBType == "sqlite" || c.DBType == "sqlite-pure"
}

// DBPath is the database file path for file based database types
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LegacyPath is the location of the legacy flat schedule file
func (c *Config) LegacyPath() string {
	return filepath.Join(c.DataDir, c.LegacyFile)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
