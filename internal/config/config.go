package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver       string `json:"db_driver"`
	DBHost         string `json:"db_host"`
	DBPort         string `json:"db_port"`
	DBUser         string `json:"db_user"`
	DBPassword     string `json:"db_password"`
	DBName         string `json:"db_name"`
	DBSSLMode      string `json:"db_sslmode"`
	DBPath         string `json:"db_path"`
	DBMaxOpenConns int    `json:"db_max_open_conns"`
	DBMaxIdleConns int    `json:"db_max_idle_conns"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Statuses after which an order and its items can no longer be changed
	TerminalStatuses []models.DeliveryStatus `json:"terminal_statuses"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBPort: %s, DBUser: %s, DBPassword: [REDACTED], DBName: %s, DBSSLMode: %s, DBPath: %s, DBMaxOpenConns: %d, DBMaxIdleConns: %d, LogLevel: %s, TerminalStatuses: %v}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode, c.DBPath, c.DBMaxOpenConns, c.DBMaxIdleConns, c.LogLevel, c.TerminalStatuses)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable holds an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	terminal, err := parseTerminalStatuses(GetEnvWithDefault("TERMINAL_STATUSES", "DELIVERED"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:             port,
		Host:             GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:         GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:           GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:           GetEnvWithDefault("DB_USER", "user"),
		DBPassword:       GetEnvWithDefault("DB_PASSWORD", "password"),
		DBName:           GetEnvWithDefault("DB_NAME", "pizza_orders"),
		DBSSLMode:        GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:           GetEnvWithDefault("DB_PATH", "pizza_orders.sqlite"),
		DBMaxOpenConns:   GetEnvAsType("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:   GetEnvAsType("DB_MAX_IDLE_CONNS", 5),
		LogLevel:         GetEnvWithDefault("LOG_LEVEL", "info"),
		TerminalStatuses: terminal,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// parseTerminalStatuses parses a comma-separated status list and validates
// every entry against the known delivery statuses.
func parseTerminalStatuses(raw string) ([]models.DeliveryStatus, error) {
	var statuses []models.DeliveryStatus
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		status := models.DeliveryStatus(strings.ToUpper(part))
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown terminal status %q in TERMINAL_STATUSES", part)
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("TERMINAL_STATUSES must name at least one status")
	}
	return statuses, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
