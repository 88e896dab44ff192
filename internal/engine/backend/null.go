package backend

// Null is a headless Backend that performs no graphics work. It is used
// for tests and for loading assets without a GL context. Texture and
// list handles are counted so lifetimes can still be exercised.
type Null struct {
	LightCount int // reported by MaxLights, 0 means 8

	nextTexture TextureHandle
	nextList    ListHandle
}

// NewNull returns a headless backend reporting the given light count.
func NewNull(lights int) *Null {
	return &Null{LightCount: lights}
}

// UploadTexture counts the upload and returns a fresh handle.
func (n *Null) UploadTexture(pix []byte, width, height, channels int) (TextureHandle, error) {
	n.nextTexture++
	return n.nextTexture, nil
}

// DeleteTexture is a no-op.
func (n *Null) DeleteTexture(h TextureHandle) {}

// MaxLights reports the configured light count.
func (n *Null) MaxLights() int {
	if n.LightCount == 0 {
		return 8
	}
	return n.LightCount
}

// SetLightEnabled is a no-op.
func (n *Null) SetLightEnabled(slot int, on bool) {}

// SetLightPosition is a no-op.
func (n *Null) SetLightPosition(slot int, pos [4]float32) {}

// SetLightDirection is a no-op.
func (n *Null) SetLightDirection(slot int, dir [3]float32) {}

// SetLightColor is a no-op.
func (n *Null) SetLightColor(slot int, term ColorTerm, rgba [4]float32) {}

// SetLightCutoff is a no-op.
func (n *Null) SetLightCutoff(slot int, degrees float32) {}

// SetLightExponent is a no-op.
func (n *Null) SetLightExponent(slot int, exponent float32) {}

// SetLightAttenuation is a no-op.
func (n *Null) SetLightAttenuation(slot int, constant, linear, quadratic float32) {}

// SetMaterialColor is a no-op.
func (n *Null) SetMaterialColor(term ColorTerm, rgba [4]float32) {}

// SetShininess is a no-op.
func (n *Null) SetShininess(shininess float32) {}

// BindTexture is a no-op.
func (n *Null) BindTexture(h TextureHandle) {}

// SetTexturing is a no-op.
func (n *Null) SetTexturing(on bool) {}

// SetBlending is a no-op.
func (n *Null) SetBlending(on bool) {}

// Begin is a no-op.
func (n *Null) Begin(p Primitive) {}

// TexCoord is a no-op.
func (n *Null) TexCoord(u, v float32) {}

// Normal is a no-op.
func (n *Null) Normal(x, y, z float32) {}

// Vertex is a no-op.
func (n *Null) Vertex(x, y, z float32) {}

// End is a no-op.
func (n *Null) End() {}

// NewList returns a fresh list handle.
func (n *Null) NewList() ListHandle {
	n.nextList++
	return n.nextList
}

// EndList is a no-op.
func (n *Null) EndList() {}

// CallList is a no-op.
func (n *Null) CallList(l ListHandle) {}

// DeleteList is a no-op.
func (n *Null) DeleteList(l ListHandle) {}
