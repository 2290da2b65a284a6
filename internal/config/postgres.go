package config

import (
	"fmt"
	"strconv"
)

// Results store defaults
const (
	DefaultPostgresPort     = 5432
	DefaultPostgresSSLMode  = "disable"
	DefaultPostgresMaxConns = 10
)

var sslModes = map[string]bool{
	"disable":     true,
	"allow":       true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// PostgresConfig locates the database runs and step results are recorded into
type PostgresConfig struct {
	User     string
	Password string
	Database string
	Host     string
	Port     int
	SSLMode  string
	// MaxConns bounds the pool shared by concurrently reporting suites
	MaxConns int
}

// LoadPostgresConfig reads the POSTGRES_* variables. Port, SSL mode and pool
// size fall back to defaults.
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	config := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
		Port:     DefaultPostgresPort,
		SSLMode:  DefaultPostgresSSLMode,
		MaxConns: DefaultPostgresMaxConns,
	}

	if config.User == "" {
		return nil, fmt.Errorf("POSTGRES_USER is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if config.Database == "" {
		return nil, fmt.Errorf("POSTGRES_DB is required")
	}
	if config.Host == "" {
		return nil, fmt.Errorf("POSTGRES_HOSTNAME is required")
	}

	if raw := getenv("POSTGRES_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("POSTGRES_PORT must be a port number, got %q", raw)
		}
		config.Port = port
	}
	if mode := getenv("POSTGRES_SSLMODE"); mode != "" {
		if !sslModes[mode] {
			return nil, fmt.Errorf("POSTGRES_SSLMODE %q is not a libpq sslmode", mode)
		}
		config.SSLMode = mode
	}
	if raw := getenv("POSTGRES_MAX_CONNS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("POSTGRES_MAX_CONNS must be a positive integer, got %q", raw)
		}
		config.MaxConns = n
	}

	return config, nil
}

// ConnectionString returns the lib/pq keyword/value connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// SearchPathConnectionString is ConnectionString with the schema lookup
// restricted to schema
func (c *PostgresConfig) SearchPathConnectionString(schema string) string {
	return fmt.Sprintf("%s search_path=%s", c.ConnectionString(), schema)
}
