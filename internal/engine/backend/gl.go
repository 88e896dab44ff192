package backend

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/faultline-interactive/objscene/internal/logger"
	"go.uber.org/zap"
)

// GL is the OpenGL 2.1 fixed-function implementation of Backend.
// Must be created after a GL context exists and used only from the
// thread that owns it.
type GL struct {
	maxLights int
}

// NewGL initializes OpenGL and returns the backend.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	var n int32
	gl.GetIntegerv(gl.MAX_LIGHTS, &n)

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.Int32("max_lights", n),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.SMOOTH)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &GL{maxLights: int(n)}, nil
}

// UploadTexture uploads pixel data as a 2D texture with linear filtering.
func (g *GL) UploadTexture(pix []byte, width, height, channels int) (TextureHandle, error) {
	var format uint32
	switch channels {
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(width), int32(height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	return TextureHandle(id), nil
}

// DeleteTexture releases an uploaded texture.
func (g *GL) DeleteTexture(h TextureHandle) {
	if h == 0 {
		return
	}
	id := uint32(h)
	gl.DeleteTextures(1, &id)
}

// MaxLights reports GL_MAX_LIGHTS.
func (g *GL) MaxLights() int {
	return g.maxLights
}

func lightID(slot int) uint32 {
	return gl.LIGHT0 + uint32(slot)
}

// SetLightEnabled enables or disables a light slot.
func (g *GL) SetLightEnabled(slot int, on bool) {
	if on {
		gl.Enable(lightID(slot))
	} else {
		gl.Disable(lightID(slot))
	}
}

// SetLightPosition sets the homogeneous light position.
func (g *GL) SetLightPosition(slot int, pos [4]float32) {
	gl.Lightfv(lightID(slot), gl.POSITION, &pos[0])
}

// SetLightDirection sets the spot direction.
func (g *GL) SetLightDirection(slot int, dir [3]float32) {
	gl.Lightfv(lightID(slot), gl.SPOT_DIRECTION, &dir[0])
}

// SetLightColor sets one color term of a light.
func (g *GL) SetLightColor(slot int, term ColorTerm, rgba [4]float32) {
	gl.Lightfv(lightID(slot), lightColorParam(term), &rgba[0])
}

func lightColorParam(term ColorTerm) uint32 {
	switch term {
	case Ambient:
		return gl.AMBIENT
	case Specular:
		return gl.SPECULAR
	default:
		return gl.DIFFUSE
	}
}

// SetLightCutoff sets the spot cutoff angle in degrees.
func (g *GL) SetLightCutoff(slot int, degrees float32) {
	gl.Lightf(lightID(slot), gl.SPOT_CUTOFF, degrees)
}

// SetLightExponent sets the spot exponent.
func (g *GL) SetLightExponent(slot int, exponent float32) {
	gl.Lightf(lightID(slot), gl.SPOT_EXPONENT, exponent)
}

// SetLightAttenuation sets the three attenuation factors.
func (g *GL) SetLightAttenuation(slot int, constant, linear, quadratic float32) {
	gl.Lightf(lightID(slot), gl.CONSTANT_ATTENUATION, constant)
	gl.Lightf(lightID(slot), gl.LINEAR_ATTENUATION, linear)
	gl.Lightf(lightID(slot), gl.QUADRATIC_ATTENUATION, quadratic)
}

// SetMaterialColor sets one material color term for front and back faces.
func (g *GL) SetMaterialColor(term ColorTerm, rgba [4]float32) {
	var pname uint32
	switch term {
	case Ambient:
		pname = gl.AMBIENT
	case Specular:
		pname = gl.SPECULAR
	case Emission:
		pname = gl.EMISSION
	default:
		pname = gl.DIFFUSE
	}
	gl.Materialfv(gl.FRONT_AND_BACK, pname, &rgba[0])
}

// SetShininess sets the specular exponent of the current material.
func (g *GL) SetShininess(shininess float32) {
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, shininess)
}

// BindTexture binds a 2D texture.
func (g *GL) BindTexture(h TextureHandle) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
}

// SetTexturing toggles 2D texturing.
func (g *GL) SetTexturing(on bool) {
	if on {
		gl.Enable(gl.TEXTURE_2D)
	} else {
		gl.Disable(gl.TEXTURE_2D)
	}
}

// SetBlending toggles alpha blending.
func (g *GL) SetBlending(on bool) {
	if on {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// Begin starts primitive submission.
func (g *GL) Begin(p Primitive) {
	if p == Polygon {
		gl.Begin(gl.POLYGON)
	} else {
		gl.Begin(gl.TRIANGLES)
	}
}

// TexCoord submits a texture coordinate.
func (g *GL) TexCoord(u, v float32) {
	gl.TexCoord2f(u, v)
}

// Normal submits a normal.
func (g *GL) Normal(x, y, z float32) {
	gl.Normal3f(x, y, z)
}

// Vertex submits a vertex.
func (g *GL) Vertex(x, y, z float32) {
	gl.Vertex3f(x, y, z)
}

// End finishes primitive submission.
func (g *GL) End() {
	gl.End()
}

// NewList opens a display list in execute-while-record mode.
func (g *GL) NewList() ListHandle {
	id := gl.GenLists(1)
	gl.NewList(id, gl.COMPILE_AND_EXECUTE)
	return ListHandle(id)
}

// EndList closes the open display list.
func (g *GL) EndList() {
	gl.EndList()
}

// CallList replays a compiled display list.
func (g *GL) CallList(l ListHandle) {
	gl.CallList(uint32(l))
}

// DeleteList releases a display list.
func (g *GL) DeleteList(l ListHandle) {
	if l == 0 {
		return
	}
	gl.DeleteLists(uint32(l), 1)
}
