package texture

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/logger"
)

// Texture is a decoded image uploaded to the graphics backend.
// A failed load leaves Pix nil and Handle zero; the instance is still
// registered so a scene with a broken texture keeps rendering untextured.
type Texture struct {
	Pix    []byte
	Width  int
	Height int
	BPP    int // bits per pixel, 24 or 32
	Handle backend.TextureHandle
	Name   string

	registry *Registry
}

// Valid reports whether the texture decoded and uploaded successfully.
func (t *Texture) Valid() bool {
	return t.Pix != nil && t.Handle != 0
}

// Release frees the backend resource and pixel buffer and removes the
// texture from its registry. Safe to call on a non-functional texture
// and idempotent.
func (t *Texture) Release() {
	if t.registry != nil {
		t.registry.remove(t)
		t.registry = nil
	}
}

// Registry owns the set of live textures for one scene. It is passed
// explicitly to loaders instead of living in process-global state so
// tests and multiple scenes stay independent.
type Registry struct {
	backend backend.Backend
	live    []*Texture
}

// NewRegistry creates a texture registry on the given backend.
func NewRegistry(b backend.Backend) *Registry {
	return &Registry{backend: b}
}

// Load reads, decodes and uploads a TGA file, registering the resulting
// texture under the given display name.
//
// On failure the returned texture is non-functional (nil pixels, zero
// handle) but still registered and returned alongside the error, so
// callers can bind it and keep going. Model loading treats a broken
// texture as a rendering degradation, not a fatal error.
func (r *Registry) Load(path, name string) (*Texture, error) {
	t := &Texture{Name: name, registry: r}
	r.live = append(r.live, t)

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading texture %s: %w", path, err)
	}

	img, err := DecodeTGA(data)
	if err != nil {
		return t, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	handle, err := r.backend.UploadTexture(img.Pix, img.Width, img.Height, img.Channels)
	if err != nil {
		return t, fmt.Errorf("uploading texture %s: %w", path, err)
	}

	t.Pix = img.Pix
	t.Width = img.Width
	t.Height = img.Height
	t.BPP = img.Channels * 8
	t.Handle = handle

	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("bpp", t.BPP),
	)

	return t, nil
}

// Textures returns the live textures in registration order.
func (r *Registry) Textures() []*Texture {
	out := make([]*Texture, len(r.live))
	copy(out, r.live)
	return out
}

// Remove releases one texture's backend resource and drops it from the
// live set.
func (r *Registry) Remove(t *Texture) {
	r.remove(t)
}

func (r *Registry) remove(t *Texture) {
	for i, cand := range r.live {
		if cand == t {
			r.live = append(r.live[:i], r.live[i+1:]...)
			break
		}
	}
	if t.Handle != 0 {
		r.backend.DeleteTexture(t.Handle)
		t.Handle = 0
	}
	t.Pix = nil
}

// Close releases every live texture.
func (r *Registry) Close() {
	for len(r.live) > 0 {
		r.remove(r.live[len(r.live)-1])
	}
}
