// Package material provides MTL material records and parsing.
package material

import (
	"github.com/faultline-interactive/objscene/internal/engine/texture"
)

// Material holds the fixed-function surface properties parsed from one
// newmtl block. Colors are RGBA with alpha initialized to 1; the diffuse
// alpha is overwritten by the transparency value at draw time.
type Material struct {
	Name string

	Ka [4]float32 // ambient
	Kd [4]float32 // diffuse
	Ks [4]float32 // specular
	Ke [4]float32 // emission

	Shininess float32
	Alpha     float32 // 1 = opaque
	Illum     int

	AmbientMap      *texture.Texture
	DiffuseMap      *texture.Texture
	SpecularMap     *texture.Texture
	EmissionMap     *texture.Texture
	ShininessMap    *texture.Texture
	TransparencyMap *texture.Texture
	BumpMap         *texture.Texture
}

// New returns a material with the standard defaults: black ambient,
// white diffuse, black specular and emission, fully opaque.
func New(name string) *Material {
	return &Material{
		Name:      name,
		Ka:        [4]float32{0, 0, 0, 1},
		Kd:        [4]float32{1, 1, 1, 1},
		Ks:        [4]float32{0, 0, 0, 1},
		Ke:        [4]float32{0, 0, 0, 1},
		Shininess: 2,
		Alpha:     1,
		Illum:     1,
	}
}

// Maps returns the bound texture maps in slot order, skipping empty slots.
func (m *Material) Maps() []*texture.Texture {
	var out []*texture.Texture
	for _, t := range []*texture.Texture{
		m.AmbientMap, m.DiffuseMap, m.SpecularMap, m.EmissionMap,
		m.ShininessMap, m.TransparencyMap, m.BumpMap,
	} {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Release frees every texture map bound to the material. The material
// list owns texture lifetime; faces only reference materials.
func (m *Material) Release() {
	for _, t := range m.Maps() {
		t.Release()
	}
	m.AmbientMap = nil
	m.DiffuseMap = nil
	m.SpecularMap = nil
	m.EmissionMap = nil
	m.ShininessMap = nil
	m.TransparencyMap = nil
	m.BumpMap = nil
}
