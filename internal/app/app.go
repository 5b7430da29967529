// Package app runs the window, input and renderer main loop.
package app

import (
	"fmt"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/assets"
	"github.com/Faultbox/skyfountain/internal/config"
	"github.com/Faultbox/skyfountain/internal/engine/debug"
	"github.com/Faultbox/skyfountain/internal/engine/input"
	"github.com/Faultbox/skyfountain/internal/engine/renderer"
	"github.com/Faultbox/skyfountain/internal/engine/scene"
	"github.com/Faultbox/skyfountain/internal/engine/window"
	"github.com/Faultbox/skyfountain/internal/logger"
)

// App is the running demo. New and Run must be called from inside
// mainthread.Run; window and GL work is forwarded to the main thread.
type App struct {
	config *config.Config
	log    *zap.Logger

	assets      *assets.Manager
	window      *window.Window
	input       *input.Input
	renderer    *renderer.Renderer
	screenshots *debug.ScreenshotCapture

	start time.Time
}

// RendererConfig maps the user configuration onto the renderer's.
func RendererConfig(cfg *config.Config) renderer.Config {
	rc := renderer.DefaultConfig()
	rc.ClearColor = cfg.Scene.ClearColor
	rc.Scene = scene.Config{ParticleCapacity: cfg.Particles.Capacity}
	rc.DragDivisor = cfg.Camera.DragDivisor
	rc.EyeHeight = cfg.Camera.EyeHeight
	rc.EyeDistance = cfg.Camera.EyeDistance
	rc.ParticlesPerFrame = cfg.Particles.PerFrame
	rc.AngleVariance = cfg.Particles.AngleVariance
	rc.SpeedVariance = cfg.Particles.SpeedVariance
	return rc
}

// New loads the scene resources, opens the window and builds the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:      cfg,
		log:         logger.Named("app"),
		assets:      assets.NewManager(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skyfountain"),
	}

	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("assets", cfg.Scene.AssetDir),
	)

	if err := a.assets.AddDir(cfg.Scene.AssetDir); err != nil {
		return nil, err
	}

	// File IO stays off the main thread.
	res, err := LoadResources(a.assets, cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("loading resources: %w", err)
	}

	rc := RendererConfig(cfg)
	rc.Seed = time.Now().UnixNano()
	a.renderer = renderer.New(rc)

	err = mainthread.CallErr(func() error {
		var err error
		a.window, err = window.New(window.Config{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			VSync:      cfg.Window.VSync,
		})
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}

		if err := a.renderer.SurfaceCreated(res); err != nil {
			a.window.Close()
			a.window = nil
			return fmt.Errorf("failed to create renderer: %w", err)
		}

		a.renderer.SurfaceChanged(a.window.DrawableSize())
		a.input = input.New(a.window.GetSize())
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Resources live on the GPU now.
	a.assets.Close()

	a.log.Info("initialized successfully")
	return a, nil
}

// Run starts the main loop and returns when the window is closed or ESC is pressed.
func (a *App) Run() {
	a.start = time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	running := true
	for running {
		mainthread.Call(func() {
			running = a.frame()
		})

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// frame handles input, draws one frame and presents it. It reports whether
// the loop should continue.
func (a *App) frame() bool {
	if a.input.Update() {
		return false
	}

	screenshot := false
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.SurfaceChanged(a.window.DrawableSize())
		case input.EventDrag:
			a.renderer.HandleTouchDrag(event.Delta.X, event.Delta.Y)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_F12:
				screenshot = true
			}
		}
	}

	a.renderer.DrawFrame(float32(time.Since(a.start).Seconds()))

	if screenshot {
		a.captureScreenshot()
	}

	a.window.SwapBuffers()
	return true
}

func (a *App) captureScreenshot() {
	w, h := a.renderer.Size()
	filename, err := a.screenshots.CaptureFramebuffer(w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", filename))
}

// Close releases the renderer and the window on the main thread.
func (a *App) Close() {
	a.log.Info("closing")

	mainthread.Call(func() {
		if a.renderer != nil {
			a.renderer.Close()
		}
		if a.window != nil {
			a.window.Close()
		}
	})
}
