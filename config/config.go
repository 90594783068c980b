package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Settings holds everything the server needs at startup. Values come from
// an optional settings.json in the data dir, overridden by environment
// variables.
type Settings struct {
	Port           int      `json:"port"`
	TMDBToken      string   `json:"tmdbToken"`
	TMDBBaseURL    string   `json:"tmdbBaseUrl,omitempty"`
	GeocodeBaseURL string   `json:"geocodeBaseUrl,omitempty"`
	CacheDir       string   `json:"cacheDir"`
	CacheTTLHours  int      `json:"cacheTtlHours"`
	LogFile        string   `json:"logFile,omitempty"`
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// Manager loads settings once and hands out copies. The settings file is
// optional; a missing file just means defaults plus env.
type Manager struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

func NewManager(dataDir string) (*Manager, error) {
	m := &Manager{
		path: filepath.Join(dataDir, "settings.json"),
		settings: Settings{
			Port:          8080,
			CacheDir:      filepath.Join(dataDir, "cache"),
			CacheTTLHours: 24,
		},
	}

	data, err := os.ReadFile(m.path)
	if err == nil {
		if err := json.Unmarshal(data, &m.settings); err != nil {
			return nil, fmt.Errorf("parse %s: %w", m.path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	m.applyEnv()
	return m, nil
}

func (m *Manager) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			m.settings.Port = port
		}
	}
	if v := os.Getenv("TMDB_BEARER_TOKEN"); v != "" {
		m.settings.TMDBToken = v
	}
	if v := os.Getenv("TMDB_BASE_URL"); v != "" {
		m.settings.TMDBBaseURL = v
	}
	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		m.settings.GeocodeBaseURL = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		m.settings.CacheDir = v
	}
	if v := os.Getenv("CACHE_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			m.settings.CacheTTLHours = hours
		}
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		m.settings.LogFile = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		m.settings.AllowedOrigins = strings.Split(v, ",")
	}
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Save writes the current settings back to the settings file.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m.settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}
