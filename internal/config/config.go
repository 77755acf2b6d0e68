package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CredentialEntry is a statically configured API user. Password may be a
// bcrypt hash or an opaque plaintext secret.
type CredentialEntry struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Roles    []string `yaml:"roles"`
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		// Driver selects the student store backend: "mongodb" or "memory".
		Driver         string `yaml:"driver" env:"DB_DRIVER"`
		URI            string `yaml:"uri" env:"DB_URI"`
		Database       string `yaml:"database" env:"DB_NAME"`
		Collection     string `yaml:"collection" env:"DB_COLLECTION"`
		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
		Audience        string `yaml:"audience" env:"JWT_AUDIENCE"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Auth struct {
		// Users is the read-only credential table loaded once at startup.
		Users []CredentialEntry `yaml:"users"`
	} `yaml:"auth"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars and defaults cover the rest
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if len(config.Auth.Users) == 0 {
		config.Auth.Users = defaultCredentials()
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Driver = "mongodb"
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Database = "studenthub"
	config.Database.Collection = "students"
	config.Database.ConnectTimeout = "10s"

	config.JWT.TokenExpiration = "1h"
	config.JWT.Issuer = "studenthub.app"
	config.JWT.Audience = "studenthub-api"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// defaultCredentials returns the demo credential table used when the
// config file does not declare any users.
func defaultCredentials() []CredentialEntry {
	return []CredentialEntry{
		{Username: "admin", Password: "admin123", Roles: []string{"Admin"}},
		{Username: "moderator", Password: "mod123", Roles: []string{"Moderator"}},
		{Username: "reader", Password: "read123", Roles: []string{"ReadOnly"}},
	}
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case "mongodb":
		if config.Database.URI == "" {
			return fmt.Errorf("database URI is required for the mongodb driver")
		}
		if config.Database.Database == "" || config.Database.Collection == "" {
			return fmt.Errorf("database name and collection are required for the mongodb driver")
		}
	case "memory":
		// Nothing to validate; the in-memory store needs no settings.
	default:
		return fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid database connect timeout format: %w", err)
	}

	for _, user := range config.Auth.Users {
		if user.Username == "" || user.Password == "" {
			return fmt.Errorf("credential entries require a username and password")
		}
		if len(user.Roles) == 0 {
			return fmt.Errorf("credential entry %q requires at least one role", user.Username)
		}
	}

	return nil
}

// TokenExpiration returns the parsed JWT expiration window.
func (c *Config) TokenExpiration() time.Duration {
	d, err := time.ParseDuration(c.JWT.TokenExpiration)
	if err != nil {
		return time.Hour
	}
	return d
}

// ConnectTimeout returns the parsed database connect timeout.
func (c *Config) ConnectTimeout() time.Duration {
	d, err := time.ParseDuration(c.Database.ConnectTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
