package database

import (
	"fmt"
)

// DatabaseConfig describes the backing store for the orders API. SQLite
// (the development default, a plain file path) and PostgreSQL are supported.
type DatabaseConfig struct {
	// Driver selects the database driver: "postgres" or "sqlite"
	Driver string

	// PostgreSQL connection settings
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path is the SQLite database file, e.g. "pizza_orders.sqlite"
	Path string

	// Connection pool sizing; zero values fall back to the defaults in
	// configureConnectionPool
	MaxOpenConns int
	MaxIdleConns int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s, MaxOpenConns: %d, MaxIdleConns: %d}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path, c.MaxOpenConns, c.MaxIdleConns)
}

// DSN builds the Data Source Name for the configured driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}
