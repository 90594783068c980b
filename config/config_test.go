package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestManagerDefaults(t *testing.T) {
	dataDir := t.TempDir()
	m, err := NewManager(dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings := m.Settings()
	if settings.Port != 8080 {
		t.Fatalf("port = %d", settings.Port)
	}
	if settings.CacheDir != filepath.Join(dataDir, "cache") {
		t.Fatalf("cache dir = %q", settings.CacheDir)
	}
	if settings.CacheTTLHours != 24 {
		t.Fatalf("cache TTL = %d", settings.CacheTTLHours)
	}
}

func TestManagerReadsSettingsFile(t *testing.T) {
	dataDir := t.TempDir()
	content := `{"port": 9090, "tmdbToken": "file-token", "cacheTtlHours": 48}`
	if err := os.WriteFile(filepath.Join(dataDir, "settings.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	m, err := NewManager(dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings := m.Settings()
	if settings.Port != 9090 || settings.TMDBToken != "file-token" || settings.CacheTTLHours != 48 {
		t.Fatalf("settings = %+v", settings)
	}
}

func TestManagerRejectsMalformedFile(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "settings.json"), []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := NewManager(dataDir); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestManagerEnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	content := `{"port": 9090, "tmdbToken": "file-token"}`
	if err := os.WriteFile(filepath.Join(dataDir, "settings.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("TMDB_BEARER_TOKEN", "env-token")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,example.org")

	m, err := NewManager(dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings := m.Settings()
	if settings.Port != 7070 {
		t.Fatalf("port = %d, want env override", settings.Port)
	}
	if settings.TMDBToken != "env-token" {
		t.Fatalf("token = %q, want env override", settings.TMDBToken)
	}
	if len(settings.AllowedOrigins) != 2 || settings.AllowedOrigins[1] != "example.org" {
		t.Fatalf("allowed origins = %v", settings.AllowedOrigins)
	}
}

func TestManagerIgnoresInvalidEnvNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("CACHE_TTL_HOURS", "-5")

	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings := m.Settings()
	if settings.Port != 8080 || settings.CacheTTLHours != 24 {
		t.Fatalf("settings = %+v, want defaults kept", settings)
	}
}

func TestManagerSaveRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	m, err := NewManager(dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := NewManager(dataDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Settings(), m.Settings()) {
		t.Fatalf("reloaded = %+v, want %+v", reloaded.Settings(), m.Settings())
	}
}
