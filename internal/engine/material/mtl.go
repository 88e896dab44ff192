package material

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/faultline-interactive/objscene/internal/engine/texture"
	"github.com/faultline-interactive/objscene/internal/logger"
)

// ParseLibrary parses an MTL file into an ordered material list.
// Texture map paths are resolved relative to the MTL file's directory
// through the registry. Unknown directives are skipped; the format is
// parsed leniently on purpose so files from newer exporters still load.
//
// A texture that fails to load stays bound as a non-functional texture
// and does not fail the library.
func ParseLibrary(path string, reg *texture.Registry) ([]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening material library: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(path)

	var materials []*Material
	var current *Material

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "newmtl" {
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			current = New(name)
			materials = append(materials, current)
			continue
		}

		if current == nil {
			// Directive before any newmtl: undefined by the format,
			// skipped so one stray line cannot sink the library.
			logger.Warn("material directive before newmtl, skipping",
				zap.String("file", path),
				zap.Int("line", lineNo),
				zap.String("directive", fields[0]),
			)
			continue
		}

		switch fields[0] {
		case "Ka":
			parseRGB(fields[1:], &current.Ka)
		case "Kd":
			parseRGB(fields[1:], &current.Kd)
		case "Ks":
			parseRGB(fields[1:], &current.Ks)
		case "Ke":
			parseRGB(fields[1:], &current.Ke)
		case "Ns":
			if v, ok := parseFloat(fields[1:]); ok {
				current.Shininess = v
			}
		case "d", "Tr":
			if v, ok := parseFloat(fields[1:]); ok {
				current.Alpha = v
			}
		case "Tf":
			var rgb [4]float32
			if parseRGB(fields[1:], &rgb) {
				current.Alpha = (rgb[0] + rgb[1] + rgb[2]) / 3
			}
		case "illum":
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					current.Illum = v
				}
			}
		case "map_Ka":
			bindMap(reg, dir, fields[1:], &current.AmbientMap)
		case "map_Kd":
			bindMap(reg, dir, fields[1:], &current.DiffuseMap)
		case "map_Ks":
			bindMap(reg, dir, fields[1:], &current.SpecularMap)
		case "map_Ke":
			bindMap(reg, dir, fields[1:], &current.EmissionMap)
		case "map_Ns":
			bindMap(reg, dir, fields[1:], &current.ShininessMap)
		case "map_d":
			bindMap(reg, dir, fields[1:], &current.TransparencyMap)
		case "map_Bump":
			bindMap(reg, dir, fields[1:], &current.BumpMap)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading material library %s: %w", path, err)
	}

	logger.Debug("material library parsed",
		zap.String("file", path),
		zap.Int("materials", len(materials)),
	)

	return materials, nil
}

// parseRGB fills the first three components, leaving alpha untouched.
func parseRGB(args []string, dst *[4]float32) bool {
	if len(args) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return false
		}
		dst[i] = float32(v)
	}
	return true
}

func parseFloat(args []string) (float32, bool) {
	if len(args) < 1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func bindMap(reg *texture.Registry, dir string, args []string, slot **texture.Texture) {
	if len(args) < 1 {
		return
	}
	name := args[0]
	tex, err := reg.Load(filepath.Join(dir, name), name)
	if err != nil {
		// Keep the non-functional texture bound: a missing map degrades
		// rendering but must not abort the model load.
		logger.Warn("texture map failed to load", zap.Error(err))
	}
	*slot = tex
}
