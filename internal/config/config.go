package config

import (
	"fmt"
	"os"
	"strconv"

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
	Port    int    `json:"port"`
	Host    string `json:"host"`
	BaseURL string `json:"base_url"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`
	DBSSLMode  string `json:"db_sslmode"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`
	// SecretKey feeds the confirmation-code digest; it is handed to the
	// token generator at construction and never read anywhere else
	SecretKey string `json:"secret_key"`

	// Email configuration
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
	SMTPFrom     string `json:"smtp_from"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, BaseURL: %s, DBDriver: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], SecretKey: [REDACTED], SMTPHost: %s, SMTPFrom: %s}",
		c.Port, c.Host, c.BaseURL, c.DBDriver, c.DBName, c.DBUser, c.LogLevel, c.SMTPHost, c.SMTPFrom)
}

// LoadConfig reads the configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		BaseURL:      GetEnvWithDefault("BASE_URL", fmt.Sprintf("http://localhost:%d", port)),
		DBDriver:     GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:       GetEnvWithDefault("DB_PATH", "pizzamaker.sqlite"),
		DBHost:       GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:       GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:       GetEnvWithDefault("DB_USER", "user"),
		DBPassword:   GetEnvWithDefault("DB_PASSWORD", "password"),
		DBName:       GetEnvWithDefault("DB_NAME", "pizzamaker"),
		DBSSLMode:    GetEnvWithDefault("DB_SSLMODE", "disable"),
		LogLevel:     GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:    GetEnvWithDefault("JWT_SECRET", "secret"),
		SecretKey:    GetEnvWithDefault("SECRET_KEY", "secret"),
		SMTPHost:     GetEnvWithDefault("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsType("SMTP_PORT", 587),
		SMTPUser:     GetEnvWithDefault("SMTP_USER", ""),
		SMTPPassword: GetEnvWithDefault("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnvWithDefault("SMTP_FROM", "admin@pizzamaker.local"),
	}
	if config.SecretKey == "secret" {
		log.Warn("SECRET_KEY is using the default value, confirmation links are guessable")
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
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
