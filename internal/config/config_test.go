package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default source config
	if cfg.Source.Location != "customers.json" {
		t.Errorf("Source.Location = %q, want %q", cfg.Source.Location, "customers.json")
	}
	if cfg.Source.S3.Endpoint != "s3.amazonaws.com" {
		t.Errorf("Source.S3.Endpoint = %q, want %q", cfg.Source.S3.Endpoint, "s3.amazonaws.com")
	}
	if !cfg.Source.S3.UseSSL {
		t.Error("Source.S3.UseSSL should be true by default")
	}

	// Verify default search config
	if cfg.Search.ResultLimit != 50 {
		t.Errorf("Search.ResultLimit = %d, want 50", cfg.Search.ResultLimit)
	}

	// Verify default TUI config
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxSizeMB != 10 || cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging rotation = %d/%d, want 10/3", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}
	if cfg.Logging.Compress {
		t.Error("Logging.Compress should be false by default")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/custsearch"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "custsearch")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/custsearch/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestLoggingConfig_ResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	cfg := Default()
	if got := cfg.Logging.ResolveDir(); got != "/custom/config/custsearch/logs" {
		t.Errorf("ResolveDir() = %q, want default under config dir", got)
	}

	cfg.Logging.Dir = "/var/log/custsearch"
	if got := cfg.Logging.ResolveDir(); got != "/var/log/custsearch" {
		t.Errorf("ResolveDir() = %q, want explicit dir", got)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	// Get() should return defaults when no config file exists
	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Search.ResultLimit != 50 {
		t.Errorf("Get().Search.ResultLimit = %d, want 50", cfg.Search.ResultLimit)
	}
	if cfg.Source.Location != "customers.json" {
		t.Errorf("Get().Source.Location = %q, want %q", cfg.Source.Location, "customers.json")
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads yaml file over defaults", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := []byte("source:\n  location: https://example.com/customers.json.gz\nsearch:\n  result_limit: 25\ntui:\n  theme: nord\n")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig failed: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Source.Location != "https://example.com/customers.json.gz" {
			t.Errorf("Source.Location = %q", cfg.Source.Location)
		}
		if cfg.Search.ResultLimit != 25 {
			t.Errorf("Search.ResultLimit = %d, want 25", cfg.Search.ResultLimit)
		}
		if cfg.TUI.Theme != "nord" {
			t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
		}
		// Untouched keys keep their defaults
		if cfg.Logging.MaxSizeMB != 10 {
			t.Errorf("Logging.MaxSizeMB = %d, want default 10", cfg.Logging.MaxSizeMB)
		}
	})

	t.Run("returns validation errors", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		SetDefaults()
		viper.Set("search.result_limit", 0)
		viper.Set("tui.theme", "solarized")

		_, err := Load()
		if err == nil {
			t.Fatal("expected validation error")
		}
		verrs, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if len(verrs) != 2 {
			t.Errorf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
		}

		// Get falls back to defaults on invalid config
		if got := Get(); got.Search.ResultLimit != 50 {
			t.Errorf("Get() should fall back to defaults, got limit %d", got.Search.ResultLimit)
		}
	})
}
