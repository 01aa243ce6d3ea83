package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/config"
)

func TestManager_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = "/tmp/portfolio-test"
	cfg.SlotName = "alt-slot"
	cfg.ImportWatchDir = "/tmp/inbox"
	cfg.Backup.Enabled = true
	cfg.Backup.Schedule = "30 2 * * *"

	var buf bytes.Buffer
	var m config.Manager
	if err := m.Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.DataDir != cfg.DataDir || got.SlotName != cfg.SlotName {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if !got.Backup.Enabled || got.Backup.Schedule != "30 2 * * *" {
		t.Errorf("round trip lost backup section: %+v", got.Backup)
	}
}

func TestManager_ReadKeepsDefaultsForMissingFields(t *testing.T) {
	var m config.Manager
	got, err := m.Read(strings.NewReader(`data_dir = "/custom/data"`))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q", got.DataDir)
	}
	if got.SlotName != "content-storage" {
		t.Errorf("SlotName = %q, want default", got.SlotName)
	}
	if got.Backup.Schedule != "0 3 * * *" {
		t.Errorf("Backup.Schedule = %q, want default", got.Backup.Schedule)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	got, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SlotName != "content-storage" {
		t.Errorf("SlotName = %q, want default", got.SlotName)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "slot_name = \"from-file\"\n\n[backup]\nenabled = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SlotName != "from-file" {
		t.Errorf("SlotName = %q", got.SlotName)
	}
	if !got.Backup.Enabled {
		t.Error("Backup.Enabled not read from file")
	}
}
