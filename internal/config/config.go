// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Database DatabaseConfig
	App      AppConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings shared by both listeners.
type ServerConfig struct {
	Port         string // admin console
	APIPort      string // reference REST API
	ReadTimeout  int    // seconds
	WriteTimeout int    // seconds
	IdleTimeout  int    // seconds
}

// APIConfig tells the console where the REST API lives.
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// DatabaseConfig holds the reference API storage settings.
type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev           bool
	Migrations    bool
	Seed          bool
	Lang          string
	RedirectDelay int // milliseconds
}

type LogConfig struct {
	Level string
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (a APIConfig) RequestTimeout() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

func (a AppConfig) Redirect() time.Duration {
	return time.Duration(a.RedirectDelay) * time.Millisecond
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8081")
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60)
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TIMEOUT", 10)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "hospital")
	v.SetDefault("DB_PASSWORD", "hospital123")
	v.SetDefault("DB_NAME", "hospital")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "hospital.db")
	v.SetDefault("DEV", false)
	v.SetDefault("MIGRATIONS", true)
	v.SetDefault("DB_SEED", false)
	v.SetDefault("LANG_DEFAULT", "es")
	v.SetDefault("APP_REDIRECT_DELAY", 1500)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			APIPort:      v.GetString("API_PORT"),
			ReadTimeout:  v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetInt("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetInt("SERVER_IDLE_TIMEOUT"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: v.GetInt("API_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(v.GetString("DB_DRIVER")),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetInt("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			DBName:     v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		App: AppConfig{
			Dev:           v.GetBool("DEV"),
			Migrations:    v.GetBool("MIGRATIONS"),
			Seed:          v.GetBool("DB_SEED"),
			Lang:          v.GetString("LANG_DEFAULT"),
			RedirectDelay: v.GetInt("APP_REDIRECT_DELAY"),
		},
		Log: LogConfig{Level: v.GetString("LOG_LEVEL")},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the servers cannot start with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be \"postgres\" or \"sqlite\", got %q", c.Database.Driver)
	}
	if c.App.RedirectDelay < 0 {
		return fmt.Errorf("APP_REDIRECT_DELAY must not be negative")
	}
	return nil
}
