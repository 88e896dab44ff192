package model

import (
	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/material"
)

// Draw submits the model to the backend. The first call after a load
// compiles a display list (opaque faces first, then transparent ones);
// subsequent calls replay it. Reloading invalidates the list.
func (m *Model) Draw(b backend.Backend) {
	if !m.loaded {
		return
	}

	if m.list != 0 {
		b.CallList(m.list)
		return
	}

	m.listBackend = b
	m.list = b.NewList()
	m.drawPass(b, false)
	m.drawPass(b, true)
	b.EndList()
}

// drawPass walks every group in order, switching material state only
// when the face's material differs from the previous one. The opaque
// pass skips faces whose material carries transparency; the transparent
// pass draws them with blending enabled.
func (m *Model) drawPass(b backend.Backend, transparent bool) {
	b.SetBlending(transparent)

	var last *material.Material
	for _, group := range m.groups {
		for _, face := range group.Faces {
			mat := face.Mat

			if mat == nil {
				// Unbound faces render with default state, opaque pass only.
				if transparent {
					continue
				}
				m.drawFace(b, face)
				continue
			}

			if mat != last {
				if (mat.Alpha < 1) != transparent {
					continue
				}

				kd := mat.Kd
				kd[3] = mat.Alpha
				b.SetMaterialColor(backend.Ambient, mat.Ka)
				b.SetMaterialColor(backend.Diffuse, kd)
				b.SetMaterialColor(backend.Specular, mat.Ks)
				b.SetMaterialColor(backend.Emission, mat.Ke)
				b.SetShininess(mat.Shininess)

				if mat.DiffuseMap != nil && mat.DiffuseMap.Valid() {
					b.SetTexturing(true)
					b.BindTexture(mat.DiffuseMap.Handle)
				} else {
					b.SetTexturing(false)
				}

				last = mat
			}

			m.drawFace(b, face)
		}
	}

	b.SetTexturing(false)
	b.SetBlending(false)
}

// drawFace emits one polygon. Faces of three or fewer vertices go out
// as triangles, larger ones as a polygon. UV and normal streams may be
// shorter than the vertex stream; missing attributes are simply not
// emitted for the trailing vertices.
func (m *Model) drawFace(b backend.Backend, face *Face) {
	prim := backend.Polygon
	if len(face.Verts) <= 3 {
		prim = backend.Triangles
	}

	b.Begin(prim)
	for i, vi := range face.Verts {
		if i < len(face.UVWs) {
			uv := m.uvws[face.UVWs[i]]
			b.TexCoord(uv.X, uv.Y)
		}
		if i < len(face.Norms) {
			n := m.norms[face.Norms[i]]
			b.Normal(n.X, n.Y, n.Z)
		}
		v := m.verts[vi]
		b.Vertex(v.X, v.Y, v.Z)
	}
	b.End()
}
