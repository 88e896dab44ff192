// Package main is the entry point for the objview model viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/faultline-interactive/objscene/internal/config"
	"github.com/faultline-interactive/objscene/internal/engine/backend"
	"github.com/faultline-interactive/objscene/internal/engine/lighting"
	"github.com/faultline-interactive/objscene/internal/engine/scene"
	"github.com/faultline-interactive/objscene/internal/engine/window"
	"github.com/faultline-interactive/objscene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Scene.Model == "" {
		return errors.New("no model to view: pass -model or set scene.model in the config")
	}

	win, err := window.New(window.Config{
		Title:      "objview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	gfx, err := backend.NewGL()
	if err != nil {
		return err
	}

	sc := scene.New(gfx)
	defer sc.Close()

	m, err := sc.LoadModel(cfg.Scene.Model)
	if err != nil {
		return err
	}
	win.SetTitle(fmt.Sprintf("objview - %s", m.Path()))

	key := sc.Lights().NewLight(lighting.Directional)
	key.SetPosition(0.5, 1, 0.8)
	fill := sc.Lights().NewLight(lighting.Directional)
	fill.SetPosition(-1, 0.2, -0.4)
	fill.SetDiffuse(0.25, 0.25, 0.3, 1)
	fill.SetSpecular(0, 0, 0, 1)

	dist := m.Radius() * cfg.Scene.Zoom
	if dist <= 0 {
		dist = 5
	}

	var angle float32
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		w, h := win.GetSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.1, 0.1, 0.15, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		applyPerspective(w, h, dist)

		gl.MatrixMode(gl.MODELVIEW)
		gl.LoadIdentity()
		gl.Translatef(0, 0, -dist)

		// Directional lights ride in view space, before the model spin.
		key.Update()
		fill.Update()

		gl.Rotatef(angle, 0, 1, 0)
		center := m.Center()
		gl.Translatef(-center.X, -center.Y, -center.Z)

		if cfg.Scene.Spin {
			angle += 0.4
		}

		sc.Draw()
		win.SwapBuffers()
		sdl.Delay(16)
	}
}

// applyPerspective sets a 45 degree vertical FOV with clip planes scaled
// to the model's size.
func applyPerspective(w, h int, dist float32) {
	if h == 0 {
		h = 1
	}
	aspect := float32(w) / float32(h)
	near := dist * 0.05
	far := dist * 10
	top := near * math32.Tan(45*math32.Pi/360)
	right := top * aspect

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Frustum(float64(-right), float64(right), float64(-top), float64(top),
		float64(near), float64(far))
}
