package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test store config
	if cfg.Store.Path == "" {
		t.Error("Store.Path should not be empty")
	}

	if cfg.Store.DefaultSuffix != "World" {
		t.Errorf("Store.DefaultSuffix = %q, want %q", cfg.Store.DefaultSuffix, "World")
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	t.Setenv(ConfigJSONEnv, `{"Store":{"DefaultSuffix":"Universe"},"Webserver":{"Port":9090}}`)

	cfg, err := ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Store.DefaultSuffix != "Universe" {
		t.Errorf("Store.DefaultSuffix = %q, want %q", cfg.Store.DefaultSuffix, "Universe")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %d, want 9090", cfg.Webserver.Port)
	}
}

func TestReadConfigInvalid(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		return dir + string(filepath.Separator)
	}

	t.Run("missing port", func(t *testing.T) {
		path := writeConfig(t, "[Webserver]\nURL = \"http://localhost\"\n")

		_, err := ReadConfig(path)
		if !errors.Is(err, ErrWebServerPortCanNotBeZero) {
			t.Errorf("ReadConfig() error = %v, want %v", err, ErrWebServerPortCanNotBeZero)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		path := writeConfig(t, "[Webserver]\nPort = 8080\n")

		_, err := ReadConfig(path)
		if !errors.Is(err, ErrEmptyURL) {
			t.Errorf("ReadConfig() error = %v, want %v", err, ErrEmptyURL)
		}
	})
}

func TestReadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "[Webserver]\nPort = 8080\nURL = \"http://localhost\"\n"

	if err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := ReadConfig(dir + string(filepath.Separator))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Store.Path == "" {
		t.Error("Store.Path default should be set")
	}

	if cfg.Store.DefaultSuffix != "World" {
		t.Errorf("Store.DefaultSuffix default = %q, want %q", cfg.Store.DefaultSuffix, "World")
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("Webserver.ShutDownTime default = %d, want 5", cfg.Webserver.ShutDownTime)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{Title: "dump-test"}

	out, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(out, "dump-test") {
		t.Errorf("DumpConfig() output does not contain title: %s", out)
	}
}
