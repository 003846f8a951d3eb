package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once at startup
// and passed by reference into each component; nothing mutates it after
// Load returns.
type Config struct {
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseHost     string
	DatabasePort     int
	DatabaseSSLMode  string

	Port  string
	GoEnv string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendURL        string
	SessionSecret      string

	// ManagerEmails is the allow-list that grants the "manager" role.
	// Entries are stored lower-cased.
	ManagerEmails []string

	// AllowlistStrict restores the historical behavior of rejecting
	// non-allow-listed logins with a 403 instead of demoting them to
	// the "customer" role.
	AllowlistStrict bool

	// ManagerRoutesProtected gates employee mutations and report routes
	// behind a "manager" session when enabled.
	ManagerRoutesProtected bool

	TaxRate       float64
	WeatherAPIKey string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production the environment is set directly, so it's
			// okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseName:           getEnv("DATABASE_NAME", "gang_63_db"),
		DatabaseUser:           getEnv("DATABASE_USER", "gang_63"),
		DatabasePassword:       getEnv("DATABASE_PASSWORD", ""),
		DatabaseHost:           getEnv("DATABASE_HOST", "localhost"),
		DatabasePort:           getEnvInt("DATABASE_PORT", 5432),
		DatabaseSSLMode:        getEnv("DATABASE_SSLMODE", "require"),
		Port:                   getEnv("PORT", "8080"),
		GoEnv:                  env,
		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:      getEnv("GOOGLE_REDIRECT_URL", ""),
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:5173"),
		SessionSecret:          getEnv("SESSION_SECRET", ""),
		ManagerEmails:          splitEmails(getEnv("MANAGER_EMAILS", "")),
		AllowlistStrict:        getEnvBool("ALLOWLIST_STRICT", false),
		ManagerRoutesProtected: getEnvBool("MANAGER_ROUTES_PROTECTED", false),
		TaxRate:                getEnvFloat("TAX_RATE", 0.0825),
		WeatherAPIKey:          getEnv("WEATHER_API_KEY", ""),
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is not configured; update the .env file before starting the backend")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}

// IsManagerEmail reports whether the email is on the manager allow-list.
// Matching is case-insensitive.
func (c *Config) IsManagerEmail(email string) bool {
	lowered := strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range c.ManagerEmails {
		if allowed == lowered {
			return true
		}
	}
	return false
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// splitEmails parses a comma-separated allow-list into lower-cased entries.
func splitEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Invalid integer for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Printf("Invalid number for %s, using default %g", key, defaultValue)
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		log.Printf("Invalid boolean for %s, using default %t", key, defaultValue)
	}
	return defaultValue
}
