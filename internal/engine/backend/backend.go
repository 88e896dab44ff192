// Package backend defines the boundary to the fixed-function graphics API.
//
// The core parsers and resource managers never touch OpenGL directly; they
// issue calls through Backend so they can run headless in tests.
package backend

// TextureHandle identifies an uploaded 2D texture.
type TextureHandle uint32

// ListHandle identifies a compiled display list.
type ListHandle uint32

// Primitive selects the submission mode for a polygon.
type Primitive int

// Primitive modes.
const (
	Triangles Primitive = iota
	Polygon
)

// ColorTerm selects which lighting/material color a call applies to.
type ColorTerm int

// Color terms of the fixed-function lighting model.
const (
	Ambient ColorTerm = iota
	Diffuse
	Specular
	Emission
)

// Backend is the set of graphics calls the scene core issues.
// All calls are side-effecting; there is no return contract beyond
// texture upload success.
type Backend interface {
	// UploadTexture uploads RGB (channels=3) or RGBA (channels=4) pixel
	// data with linear min/mag filtering and no mipmaps.
	UploadTexture(pix []byte, width, height, channels int) (TextureHandle, error)
	DeleteTexture(h TextureHandle)

	// MaxLights reports the number of simultaneous hardware lights.
	MaxLights() int
	SetLightEnabled(slot int, on bool)
	SetLightPosition(slot int, pos [4]float32)
	SetLightDirection(slot int, dir [3]float32)
	SetLightColor(slot int, term ColorTerm, rgba [4]float32)
	SetLightCutoff(slot int, degrees float32)
	SetLightExponent(slot int, exponent float32)
	SetLightAttenuation(slot int, constant, linear, quadratic float32)

	// Material state applied to subsequently submitted primitives.
	SetMaterialColor(term ColorTerm, rgba [4]float32)
	SetShininess(shininess float32)
	BindTexture(h TextureHandle)
	SetTexturing(on bool)
	SetBlending(on bool)

	// Primitive submission.
	Begin(p Primitive)
	TexCoord(u, v float32)
	Normal(x, y, z float32)
	Vertex(x, y, z float32)
	End()

	// Display lists. NewList opens a list compiled in execute-while-record
	// mode; CallList replays it.
	NewList() ListHandle
	EndList()
	CallList(l ListHandle)
	DeleteList(l ListHandle)
}
