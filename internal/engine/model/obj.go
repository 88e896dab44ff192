package model

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/faultline-interactive/objscene/internal/engine/material"
	"github.com/faultline-interactive/objscene/internal/logger"
	"github.com/faultline-interactive/objscene/pkg/math"
)

// ErrUnresolvedReference is returned when a face cites an index outside
// the vertex, UVW or normal pool.
var ErrUnresolvedReference = errors.New("face reference outside pool bounds")

// Load parses an OBJ file into the model, replacing any previously
// loaded content. Material libraries named by mtllib directives are
// resolved relative to the OBJ's directory; a library that fails to
// load is logged and skipped rather than failing the model.
//
// Unknown directives are skipped, keeping the parser tolerant of
// exporter extensions. Face references use 1-based indices in the
// v, v/t, v//n and v/t/n forms.
func (m *Model) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()

	m.reset()

	dir := filepath.Dir(path)

	defaultGroup := &GroupObject{ObjectName: "default"}
	m.groups = []*GroupObject{defaultGroup}
	currentGroup := defaultGroup

	var currentMat *material.Material

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "#" {
			continue
		}

		switch fields[0] {
		case "mtllib":
			for _, name := range fields[1:] {
				mats, err := material.ParseLibrary(filepath.Join(dir, name), m.registry)
				if err != nil {
					logger.Warn("material library failed to load",
						zap.String("model", path),
						zap.String("library", name),
						zap.Error(err),
					)
					continue
				}
				m.materials = append(m.materials, mats...)
			}

		case "usemtl":
			currentMat = nil
			if len(fields) > 1 {
				currentMat = m.findMaterial(fields[1])
				if currentMat == nil {
					logger.Debug("usemtl names unknown material",
						zap.String("model", path),
						zap.Int("line", lineNo),
						zap.String("material", fields[1]),
					)
				}
			}

		case "v":
			m.verts = append(m.verts, parseVec3(fields[1:]))

		case "vt":
			m.uvws = append(m.uvws, parseVec3(fields[1:]))

		case "vn":
			m.norms = append(m.norms, parseVec3(fields[1:]))

		case "g":
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			if name == "default" {
				currentGroup = defaultGroup
				break
			}
			group := &GroupObject{ObjectName: name}
			if len(fields) > 2 {
				group.GroupName = fields[2]
			}
			m.groups = append(m.groups, group)
			currentGroup = group

		case "f":
			face, err := m.parseFace(fields[1:], currentMat)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			currentGroup.Faces = append(currentGroup.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading model %s: %w", path, err)
	}

	m.computeBounds()
	m.loaded = true
	m.path = path

	faces := 0
	for _, g := range m.groups {
		faces += len(g.Faces)
	}
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", len(m.verts)),
		zap.Int("faces", faces),
		zap.Int("groups", len(m.groups)),
		zap.Int("materials", len(m.materials)),
	)

	return nil
}

// parseFace resolves one f directive into a face bound to the current
// material, computing the centroid and face normal.
func (m *Model) parseFace(refs []string, mat *material.Material) (*Face, error) {
	face := &Face{Mat: mat}

	for _, ref := range refs {
		parts := strings.Split(ref, "/")

		vi, err := resolveIndex(parts[0], len(m.verts))
		if err != nil {
			return nil, fmt.Errorf("vertex ref %q: %w", ref, err)
		}
		face.Verts = append(face.Verts, vi)

		// v/t and v/t/n carry a UV; v//n leaves the middle part empty.
		if len(parts) > 1 && parts[1] != "" {
			ti, err := resolveIndex(parts[1], len(m.uvws))
			if err != nil {
				return nil, fmt.Errorf("uv ref %q: %w", ref, err)
			}
			face.UVWs = append(face.UVWs, ti)
		}

		if len(parts) > 2 && parts[2] != "" {
			ni, err := resolveIndex(parts[2], len(m.norms))
			if err != nil {
				return nil, fmt.Errorf("normal ref %q: %w", ref, err)
			}
			face.Norms = append(face.Norms, ni)
		}
	}

	if len(face.Verts) > 0 {
		sum := math.Vec3{}
		for _, vi := range face.Verts {
			sum = sum.Add(m.verts[vi])
		}
		face.Center = sum.Scale(1 / float32(len(face.Verts)))
	}

	if len(face.Verts) >= 3 {
		v0 := m.verts[face.Verts[0]]
		e1 := v0.Sub(m.verts[face.Verts[1]]).Normalize()
		e2 := v0.Sub(m.verts[face.Verts[2]]).Normalize()
		face.Normal = e1.Cross(e2)
	}

	return face, nil
}

// resolveIndex converts a 1-based file index to a 0-based pool index,
// rejecting anything outside the pool. Negative (relative) indices are
// not part of the supported subset.
func resolveIndex(s string, poolSize int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an index", ErrUnresolvedReference, s)
	}
	idx--
	if idx < 0 || idx >= poolSize {
		return 0, fmt.Errorf("%w: index %d with pool size %d", ErrUnresolvedReference, idx+1, poolSize)
	}
	return idx, nil
}

// parseVec3 reads up to three floats; missing or malformed components
// stay zero, matching the lenient policy for text directives.
func parseVec3(args []string) math.Vec3 {
	var out [3]float32
	for i := 0; i < 3 && i < len(args); i++ {
		if v, err := strconv.ParseFloat(args[i], 32); err == nil {
			out[i] = float32(v)
		}
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}
}
