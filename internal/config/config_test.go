package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GYANGURU_DB", "")
	t.Setenv("GYANGURU_THEME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.Theme != "" {
		t.Errorf("Theme = %q, want empty", cfg.Theme)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GYANGURU_DB", "/tmp/custom.db")
	t.Setenv("GYANGURU_THEME", "light")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q, want /tmp/custom.db", cfg.DBPath)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
}
