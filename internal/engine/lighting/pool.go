package lighting

import (
	"go.uber.org/zap"

	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/logger"
)

// Pool allocates hardware light slots. It is an explicit per-scene
// object rather than process state, so independent scenes (and tests)
// get their own slot space, and constructing a pool twice cannot
// duplicate slots.
type Pool struct {
	backend  backend.Backend
	capacity int
	free     []int
	lights   []*Light
}

// NewPool queries the backend's maximum simultaneous light count and
// populates the slot pool.
func NewPool(b backend.Backend) *Pool {
	p := &Pool{
		backend:  b,
		capacity: b.MaxLights(),
	}
	for i := 0; i < p.capacity; i++ {
		p.free = append(p.free, i)
	}

	logger.Debug("light pool initialized", zap.Int("slots", p.capacity))
	return p
}

// Capacity returns the backend-reported maximum light count.
func (p *Pool) Capacity() int { return p.capacity }

// Available returns the number of unclaimed slots.
func (p *Pool) Available() int { return len(p.free) }

// Lights returns the live light instances, active or not.
func (p *Pool) Lights() []*Light {
	out := make([]*Light, len(p.lights))
	copy(out, p.lights)
	return out
}

// NewLight claims a slot and configures it with defaults: positioned at
// the origin, pointing straight down, 45 degree cutoff, exponent 12,
// black ambient, white diffuse and specular. With the pool exhausted the
// returned light is inactive and every operation on it is a no-op.
func (p *Pool) NewLight(t Type) *Light {
	l := &Light{pool: p}
	p.lights = append(p.lights, l)

	if len(p.free) == 0 {
		logger.Warn("light pool exhausted, light disabled",
			zap.Int("capacity", p.capacity),
		)
		return l
	}

	l.slot = p.free[0]
	p.free = p.free[1:]
	l.active = true

	l.SetVisible(true)
	l.SetType(t)
	l.SetPosition(0, 0, 0)
	l.SetSpotDirection(0, -1, 0)
	l.SetCutOff(45)
	l.SetExponent(12)
	l.SetAmbient(0, 0, 0, 1)
	l.SetDiffuse(1, 1, 1, 1)
	l.SetSpecular(1, 1, 1, 1)
	l.Update()

	return l
}

// Close releases every live light.
func (p *Pool) Close() {
	for len(p.lights) > 0 {
		p.lights[len(p.lights)-1].Release()
	}
}

// drop removes a light from the live list.
func (p *Pool) drop(l *Light) {
	for i, cand := range p.lights {
		if cand == l {
			p.lights = append(p.lights[:i], p.lights[i+1:]...)
			return
		}
	}
}
