package material

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/texture"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// writeTGA writes a minimal valid 1x1 24-bpp TGA fixture.
func writeTGA(t *testing.T, dir, name string) {
	t.Helper()
	data := make([]byte, 18, 21)
	data[2] = 2  // uncompressed true-color
	data[12] = 1 // width
	data[14] = 1 // height
	data[16] = 24
	data = append(data, 10, 20, 30)
	writeFile(t, dir, name, string(data))
}

func newRegistry() *texture.Registry {
	return texture.NewRegistry(backend.NewNull(8))
}

func TestParseLibraryColors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.mtl", `
newmtl shiny
Ka 0.1 0.2 0.3
Kd 0.4 0.5 0.6
Ks 0.7 0.8 0.9
Ke 0.01 0.02 0.03
Ns 96.0
illum 2
`)

	mats, err := ParseLibrary(path, newRegistry())
	if err != nil {
		t.Fatalf("ParseLibrary() error: %v", err)
	}
	if len(mats) != 1 {
		t.Fatalf("got %d materials, want 1", len(mats))
	}

	m := mats[0]
	if m.Name != "shiny" {
		t.Errorf("Name = %q, want shiny", m.Name)
	}
	if m.Ka != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("Ka = %v", m.Ka)
	}
	if m.Kd != [4]float32{0.4, 0.5, 0.6, 1} {
		t.Errorf("Kd = %v", m.Kd)
	}
	if m.Ks != [4]float32{0.7, 0.8, 0.9, 1} {
		t.Errorf("Ks = %v", m.Ks)
	}
	if m.Shininess != 96 {
		t.Errorf("Shininess = %v, want 96", m.Shininess)
	}
	if m.Illum != 2 {
		t.Errorf("Illum = %d, want 2", m.Illum)
	}
	if m.Alpha != 1 {
		t.Errorf("Alpha = %v, want default 1", m.Alpha)
	}
}

func TestParseLibraryTransparency(t *testing.T) {
	tests := []struct {
		name string
		mtl  string
		want float32
	}{
		{"d directive", "newmtl m\nd 0.25\n", 0.25},
		{"Tr directive", "newmtl m\nTr 0.75\n", 0.75},
		{"last directive wins", "newmtl m\nd 0.25\nTr 0.75\n", 0.75},
		{"Tf averages", "newmtl m\nTf 0.3 0.6 0.9\n", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "a.mtl", tt.mtl)
			mats, err := ParseLibrary(path, newRegistry())
			if err != nil {
				t.Fatalf("ParseLibrary() error: %v", err)
			}
			got := mats[0].Alpha
			if got < tt.want-1e-5 || got > tt.want+1e-5 {
				t.Errorf("Alpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLibraryTextureMaps(t *testing.T) {
	dir := t.TempDir()
	writeTGA(t, dir, "diffuse.tga")
	path := writeFile(t, dir, "scene.mtl", `
newmtl textured
map_Kd diffuse.tga
map_Bump missing.tga
`)

	reg := newRegistry()
	mats, err := ParseLibrary(path, reg)
	if err != nil {
		t.Fatalf("ParseLibrary() error: %v", err)
	}

	m := mats[0]
	if m.DiffuseMap == nil || !m.DiffuseMap.Valid() {
		t.Error("expected a valid diffuse map")
	}
	// Missing file stays bound as a non-functional texture.
	if m.BumpMap == nil {
		t.Error("expected bump map slot to be bound")
	} else if m.BumpMap.Valid() {
		t.Error("expected bump map to be non-functional")
	}
	if got := len(reg.Textures()); got != 2 {
		t.Errorf("registered textures = %d, want 2", got)
	}
}

func TestParseLibraryLenient(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.mtl", `
# comment
Kd 1 0 0
someFutureDirective 1 2 3

newmtl a
bogus
Kd 0.5 0.5 0.5
newmtl b
`)

	mats, err := ParseLibrary(path, newRegistry())
	if err != nil {
		t.Fatalf("ParseLibrary() error: %v", err)
	}
	if len(mats) != 2 {
		t.Fatalf("got %d materials, want 2", len(mats))
	}
	if mats[0].Kd != [4]float32{0.5, 0.5, 0.5, 1} {
		t.Errorf("Kd = %v", mats[0].Kd)
	}
	// "b" keeps pure defaults.
	if mats[1].Kd != [4]float32{1, 1, 1, 1} {
		t.Errorf("default Kd = %v", mats[1].Kd)
	}
}

func TestParseLibraryMissingFile(t *testing.T) {
	_, err := ParseLibrary(filepath.Join(t.TempDir(), "missing.mtl"), newRegistry())
	if err == nil {
		t.Error("expected error for missing library")
	}
}

func TestMaterialRelease(t *testing.T) {
	dir := t.TempDir()
	writeTGA(t, dir, "a.tga")
	path := writeFile(t, dir, "scene.mtl", "newmtl m\nmap_Kd a.tga\nmap_Ka a.tga\n")

	reg := newRegistry()
	mats, err := ParseLibrary(path, reg)
	if err != nil {
		t.Fatalf("ParseLibrary() error: %v", err)
	}

	mats[0].Release()
	if got := len(reg.Textures()); got != 0 {
		t.Errorf("live textures after Release = %d, want 0", got)
	}
	if mats[0].DiffuseMap != nil {
		t.Error("expected diffuse slot cleared")
	}
}
