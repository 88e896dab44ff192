// Package scene assembles models, textures and lights over one backend.
package scene

import (
	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/lighting"
	"github.com/faultline-interactive/objscene/internal/engine/model"
	"github.com/faultline-interactive/objscene/internal/engine/texture"
)

// Scene owns a texture registry, a light pool and a set of models, all
// bound to one graphics backend. Scenes are independent of each other.
type Scene struct {
	backend  backend.Backend
	registry *texture.Registry
	lights   *lighting.Pool
	models   []*model.Model
}

// New creates an empty scene on the given backend.
func New(b backend.Backend) *Scene {
	return &Scene{
		backend:  b,
		registry: texture.NewRegistry(b),
		lights:   lighting.NewPool(b),
	}
}

// Registry returns the scene's texture registry.
func (s *Scene) Registry() *texture.Registry { return s.registry }

// Lights returns the scene's light pool.
func (s *Scene) Lights() *lighting.Pool { return s.lights }

// Models returns the loaded models in load order.
func (s *Scene) Models() []*model.Model {
	out := make([]*model.Model, len(s.models))
	copy(out, s.models)
	return out
}

// LoadModel parses an OBJ file into a new model owned by the scene.
func (s *Scene) LoadModel(path string) (*model.Model, error) {
	m := model.New(s.registry)
	if err := m.Load(path); err != nil {
		return nil, err
	}
	s.models = append(s.models, m)
	return m, nil
}

// Draw submits every model to the backend.
func (s *Scene) Draw() {
	for _, m := range s.models {
		m.Draw(s.backend)
	}
}

// Close tears down models (releasing their materials and textures),
// then the light pool, then any textures loaded outside a model.
func (s *Scene) Close() {
	for _, m := range s.models {
		m.Close()
	}
	s.models = nil
	s.lights.Close()
	s.registry.Close()
}
