package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration. All fields have working
// defaults; the config file is optional.
type Config struct {
	DataDir        string       `toml:"data_dir"`
	SlotName       string       `toml:"slot_name"`
	ImportWatchDir string       `toml:"import_watch_dir"`
	Backup         BackupConfig `toml:"backup"`
}

// BackupConfig controls scheduled snapshot exports.
type BackupConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron expression
	Dir      string `toml:"dir"`
}

// Default returns the configuration used when no config file exists.
// Data lives under ~/.local/share/portfolio.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "portfolio")
	return &Config{
		DataDir:  dataDir,
		SlotName: "content-storage",
		Backup: BackupConfig{
			Enabled:  false,
			Schedule: "0 3 * * *",
			Dir:      filepath.Join(dataDir, "backups"),
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader. Missing fields keep
// their defaults.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var m Manager
	return m.Read(f)
}
