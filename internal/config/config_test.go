package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// empty values are treated as unset, so defaults apply
	for _, k := range []string{"PORT", "API_BASE_URL", "DB_DRIVER", "APP_REDIRECT_DELAY", "LANG_DEFAULT", "DEV"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8081" || cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected defaults %+v %+v", cfg.Server, cfg.API)
	}
	if cfg.Database.Driver != "sqlite" || cfg.App.Lang != "es" || cfg.App.Redirect() != 1500*time.Millisecond {
		t.Fatalf("unexpected defaults %+v %+v", cfg.Database, cfg.App)
	}
	if cfg.App.Dev {
		t.Fatalf("dev mode must be opt-in")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("API_BASE_URL", "http://api.internal:8080/api")
	t.Setenv("API_TIMEOUT", "3")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("APP_REDIRECT_DELAY", "250")
	t.Setenv("DEV", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9001" || cfg.Server.APIPort != "8080" {
		t.Fatalf("unexpected server %+v", cfg.Server)
	}
	if cfg.API.BaseURL != "http://api.internal:8080/api" || cfg.API.RequestTimeout() != 3*time.Second {
		t.Fatalf("unexpected api %+v", cfg.API)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Port != 6543 {
		t.Fatalf("unexpected db %+v", cfg.Database)
	}
	if cfg.App.Redirect() != 250*time.Millisecond || !cfg.App.Dev {
		t.Fatalf("unexpected app %+v", cfg.App)
	}
	if got := cfg.Database.DSN(); got != "host=localhost port=6543 user=hospital password=hospital123 dbname=hospital sslmode=disable" {
		t.Fatalf("unexpected dsn %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(*Config) {}, false},
		{"no base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"negative delay", func(c *Config) { c.App.RedirectDelay = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				API:      APIConfig{BaseURL: "http://localhost:8080/api"},
				Database: DatabaseConfig{Driver: "sqlite"},
				App:      AppConfig{RedirectDelay: 1500},
			}
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
