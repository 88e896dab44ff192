package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/lighting"
)

func writeOBJ(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tri.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(obj), 0644); err != nil {
		t.Fatalf("writing obj: %v", err)
	}
	return path
}

func TestSceneLoadAndDraw(t *testing.T) {
	s := New(backend.NewNull(4))

	m, err := s.LoadModel(writeOBJ(t))
	if err != nil {
		t.Fatalf("LoadModel() error: %v", err)
	}
	if !m.Loaded() {
		t.Error("expected loaded model")
	}
	if got := len(s.Models()); got != 1 {
		t.Errorf("models = %d, want 1", got)
	}

	// Headless submission must not panic.
	s.Draw()
	s.Draw()
}

func TestSceneLoadModelError(t *testing.T) {
	s := New(backend.NewNull(4))
	if _, err := s.LoadModel(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing model file")
	}
	if got := len(s.Models()); got != 0 {
		t.Errorf("models after failed load = %d, want 0", got)
	}
}

func TestSceneClose(t *testing.T) {
	s := New(backend.NewNull(2))

	if _, err := s.LoadModel(writeOBJ(t)); err != nil {
		t.Fatalf("LoadModel() error: %v", err)
	}
	s.Lights().NewLight(lighting.Spot)

	s.Close()
	if got := len(s.Models()); got != 0 {
		t.Errorf("models after Close = %d, want 0", got)
	}
	if got := len(s.Lights().Lights()); got != 0 {
		t.Errorf("lights after Close = %d, want 0", got)
	}
	if got := len(s.Registry().Textures()); got != 0 {
		t.Errorf("textures after Close = %d, want 0", got)
	}
}
