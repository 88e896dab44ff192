// Package lighting manages the fixed pool of hardware light slots.
package lighting

import (
	"github.com/faultline-interactive/objscene/internal/engine/backend"
)

// Type selects the light kind.
type Type int

// Light kinds.
const (
	Spot Type = iota
	Point
	Directional
)

// Point lights reuse the spot machinery with a wide-open cone.
const pointCutoff = 100

// Light is one claimed hardware light slot. A light constructed from an
// exhausted pool is inactive: all setters become no-ops and it renders
// nothing, but it is safe to use and release.
type Light struct {
	pool   *Pool
	slot   int
	active bool

	visible   bool
	typ       Type
	position  [4]float32 // w: 1 for spot/point, 0 for directional
	direction [3]float32
	cutoff    float32
	exponent  float32
}

// Active reports whether the light holds a hardware slot.
func (l *Light) Active() bool { return l.active }

// Slot returns the claimed hardware slot. ok is false for a light that
// never got one.
func (l *Light) Slot() (slot int, ok bool) {
	return l.slot, l.active
}

// Visible reports whether the light is currently enabled.
func (l *Light) Visible() bool { return l.visible }

// SetVisible enables or disables the light slot.
func (l *Light) SetVisible(on bool) {
	if !l.active {
		return
	}
	l.visible = on
	l.pool.backend.SetLightEnabled(l.slot, on)
}

// SetAmbient sets the ambient color.
func (l *Light) SetAmbient(r, g, b, a float32) {
	if !l.active {
		return
	}
	l.pool.backend.SetLightColor(l.slot, backend.Ambient, [4]float32{r, g, b, a})
}

// SetDiffuse sets the diffuse color.
func (l *Light) SetDiffuse(r, g, b, a float32) {
	if !l.active {
		return
	}
	l.pool.backend.SetLightColor(l.slot, backend.Diffuse, [4]float32{r, g, b, a})
}

// SetSpecular sets the specular color.
func (l *Light) SetSpecular(r, g, b, a float32) {
	if !l.active {
		return
	}
	l.pool.backend.SetLightColor(l.slot, backend.Specular, [4]float32{r, g, b, a})
}

// SetType switches the light kind by adjusting the homogeneous w
// component of the position: 1 for spot and point lights, 0 for
// directional. Point lights additionally force a wide-open cutoff.
func (l *Light) SetType(t Type) {
	if !l.active {
		return
	}
	l.typ = t

	switch t {
	case Directional:
		l.position[3] = 0
	case Point:
		l.position[3] = 1
		l.SetCutOff(pointCutoff)
	default:
		l.position[3] = 1
	}

	l.Update()
}

// SetPosition sets the light position. The w component is owned by the
// light type.
func (l *Light) SetPosition(x, y, z float32) {
	if !l.active {
		return
	}
	l.position[0], l.position[1], l.position[2] = x, y, z
	l.pool.backend.SetLightPosition(l.slot, l.position)
}

// SetSpotDirection sets the spot direction vector.
func (l *Light) SetSpotDirection(x, y, z float32) {
	if !l.active {
		return
	}
	l.direction = [3]float32{x, y, z}
	l.pool.backend.SetLightDirection(l.slot, l.direction)
}

// SetCutOff sets the spot cone angle in degrees.
func (l *Light) SetCutOff(degrees float32) {
	if !l.active {
		return
	}
	l.cutoff = degrees
	l.pool.backend.SetLightCutoff(l.slot, degrees)
}

// SetExponent sets the spot focus exponent.
func (l *Light) SetExponent(exponent float32) {
	if !l.active {
		return
	}
	l.exponent = exponent
	l.pool.backend.SetLightExponent(l.slot, exponent)
}

// SetAttenuation sets the constant, linear and quadratic attenuation
// factors.
func (l *Light) SetAttenuation(constant, linear, quadratic float32) {
	if !l.active {
		return
	}
	l.pool.backend.SetLightAttenuation(l.slot, constant, linear, quadratic)
}

// Update re-pushes position and direction to the backend, for callers
// that change state outside the setters (e.g. after a modelview change).
func (l *Light) Update() {
	if !l.active {
		return
	}
	l.pool.backend.SetLightPosition(l.slot, l.position)
	l.pool.backend.SetLightDirection(l.slot, l.direction)
}

// Release disables the light and returns its slot to the pool for
// reuse. Safe on inactive lights and idempotent.
func (l *Light) Release() {
	if l.pool == nil {
		return
	}
	if l.active {
		l.pool.backend.SetLightEnabled(l.slot, false)
		l.pool.free = append(l.pool.free, l.slot)
		l.active = false
		l.visible = false
	}
	l.pool.drop(l)
	l.pool = nil
}
