// Package model provides Wavefront OBJ model loading and submission.
package model

import (
	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/material"
	"github.com/faultline-interactive/objscene/internal/engine/texture"
	"github.com/faultline-interactive/objscene/pkg/math"
)

// Face is one polygon of a group. It references geometry by pool index
// and never owns vertex data; the index slices have independent lengths
// since a face may cite fewer normals or UVs than vertices.
type Face struct {
	Verts []int // indices into the model's vertex pool
	UVWs  []int // indices into the UVW pool
	Norms []int // indices into the normal pool

	Mat *material.Material // nil when no material is bound

	Center math.Vec3
	Normal math.Vec3 // cross of the first two edges; zero when < 3 vertices
}

// GroupObject is a named partition of faces, one per OBJ g directive.
type GroupObject struct {
	ObjectName string
	GroupName  string
	Faces      []*Face
}

// Model owns the geometry pools, groups and materials of one OBJ file,
// and transitively the textures referenced by its materials.
type Model struct {
	verts []math.Vec3
	norms []math.Vec3
	uvws  []math.Vec3

	groups    []*GroupObject
	materials []*material.Material

	corners [8]math.Vec3
	center  math.Vec3
	radius  float32

	loaded bool
	path   string

	registry *texture.Registry

	// Cached display list, invalidated on reload.
	list        backend.ListHandle
	listBackend backend.Backend
}

// New creates an empty model whose material textures load through the
// given registry.
func New(reg *texture.Registry) *Model {
	return &Model{registry: reg}
}

// Loaded reports whether the model holds parsed geometry.
func (m *Model) Loaded() bool { return m.loaded }

// Path returns the source file of the last successful load.
func (m *Model) Path() string { return m.path }

// Vertices returns the vertex pool.
func (m *Model) Vertices() []math.Vec3 { return m.verts }

// Normals returns the normal pool.
func (m *Model) Normals() []math.Vec3 { return m.norms }

// UVWs returns the texture coordinate pool.
func (m *Model) UVWs() []math.Vec3 { return m.uvws }

// Groups returns the group objects in declaration order; the default
// group is always first.
func (m *Model) Groups() []*GroupObject { return m.groups }

// Materials returns all materials loaded via mtllib, in insertion order.
func (m *Model) Materials() []*material.Material { return m.materials }

// Radius returns the bounding sphere radius. Defined only after a load
// that saw at least one vertex.
func (m *Model) Radius() float32 { return m.radius }

// Center returns the bounding sphere center (mean of all vertices).
func (m *Model) Center() math.Vec3 { return m.center }

// BoundingBox returns the 8 corners of the axis-aligned bounding box.
func (m *Model) BoundingBox() [8]math.Vec3 { return m.corners }

// Close releases all owned geometry, materials and their textures.
func (m *Model) Close() {
	m.reset()
}

// reset tears down the previous load so Load is idempotent: materials
// release their textures, pools and groups are dropped, and the cached
// display list is invalidated.
func (m *Model) reset() {
	for _, mat := range m.materials {
		mat.Release()
	}
	m.materials = nil
	m.groups = nil
	m.verts = nil
	m.norms = nil
	m.uvws = nil

	m.corners = [8]math.Vec3{}
	m.center = math.Vec3{}
	m.radius = 0

	if m.list != 0 && m.listBackend != nil {
		m.listBackend.DeleteList(m.list)
	}
	m.list = 0

	m.loaded = false
}

// findMaterial returns the first material with the given name in
// insertion order, or nil.
func (m *Model) findMaterial(name string) *material.Material {
	for _, mat := range m.materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// computeBounds derives the bounding box corners, sphere center and
// radius from the vertex pool. Undefined (left zero) with no vertices.
func (m *Model) computeBounds() {
	if len(m.verts) == 0 {
		return
	}

	min := m.verts[0]
	max := m.verts[0]
	sum := math.Vec3{}
	for _, v := range m.verts {
		min = min.Min(v)
		max = max.Max(v)
		sum = sum.Add(v)
	}

	m.center = sum.Scale(1 / float32(len(m.verts)))
	m.radius = max.Sub(min).Length() / 2

	m.corners = [8]math.Vec3{
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}
}
