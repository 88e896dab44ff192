package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Scene.Model != "" {
		t.Errorf("expected empty model path, got %s", cfg.Scene.Model)
	}
	if !cfg.Scene.Spin {
		t.Error("expected spin to be true by default")
	}
	if cfg.Scene.Zoom != 2.5 {
		t.Errorf("expected zoom 2.5, got %f", cfg.Scene.Zoom)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "objview.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
scene:
  model: assets/teapot.obj
  zoom: 4
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false")
	}
	if cfg.Scene.Model != "assets/teapot.obj" {
		t.Errorf("expected model path from file, got %s", cfg.Scene.Model)
	}
	if cfg.Scene.Zoom != 4 {
		t.Errorf("expected zoom 4, got %f", cfg.Scene.Zoom)
	}
	// Unset keys keep their defaults.
	if !cfg.Scene.Spin {
		t.Error("expected spin to keep its default")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "objview.yaml")

	cfg := Default()
	cfg.Scene.Model = "cube.obj"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.Model != "cube.obj" {
		t.Errorf("round-trip model = %s, want cube.obj", loaded.Scene.Model)
	}
}
