// Package game implements the main loop and the context handed to game states.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/internal/config"
	"github.com/bugsyth/bugsyth-engine/internal/engine/audio"
	"github.com/bugsyth/bugsyth-engine/internal/engine/camera"
	"github.com/bugsyth/bugsyth-engine/internal/engine/input"
	"github.com/bugsyth/bugsyth-engine/internal/engine/renderer"
	"github.com/bugsyth/bugsyth-engine/internal/engine/window"
)

// rightButtonMask selects the right button in a motion event's button state.
const rightButtonMask = 1 << (sdl.BUTTON_RIGHT - 1)

// Context bundles the engine services a state needs each frame.
type Context struct {
	Config   *config.Config
	Window   *window.Window
	Input    *input.Input
	Renderer *renderer.Renderer
	Camera   *camera.OrbitCamera
	Audio    *audio.Manager
	Log      *zap.Logger

	// DT is the seconds elapsed since the previous frame.
	DT float32

	states   *Manager
	running  bool
	captures []FrameFunc
}

// FrameFunc receives the RGBA pixels of a finished frame, bottom row first.
type FrameFunc func(pixels []byte, width, height int)

// New creates the window, renderer, input, camera and audio from cfg.
func New(cfg *config.Config, log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing engine",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	ctx := &Context{
		Config: cfg,
		Log:    log,
		Input:  input.New(),
		Camera: camera.NewOrbitCamera(),
	}

	var err error
	ctx.Window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	width, height := ctx.Window.GetSize()
	ctx.Renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [3]float32{0.05, 0.05, 0.08},
	}, log.Named("renderer"))
	if err != nil {
		ctx.Window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ctx.Audio = audio.New(log.Named("audio"))
	ctx.Audio.SetMasterVolume(cfg.Audio.MasterVolume)
	ctx.Audio.SetSFXVolume(cfg.Audio.SFXVolume)
	ctx.Audio.SetMuted(cfg.Audio.Muted)
	if !cfg.Audio.Muted {
		if err := ctx.Audio.Init(); err != nil {
			// The simulation runs fine without sound.
			log.Warn("audio unavailable", zap.Error(err))
		}
	}

	log.Info("engine initialized")
	return ctx, nil
}

// Close releases engine resources.
func (c *Context) Close() {
	c.Log.Info("closing engine")

	if c.Audio != nil {
		c.Audio.Close()
	}
	if c.Renderer != nil {
		c.Renderer.Close()
	}
	if c.Window != nil {
		c.Window.Close()
	}
}

// Quit stops the loop after the current frame.
func (c *Context) Quit() {
	c.running = false
}

// ChangeState switches to another state at the start of the next frame.
func (c *Context) ChangeState(next GameState) {
	if c.states != nil {
		c.states.Change(next)
	}
}

// Run drives state until the window closes, Escape is pressed or Quit is called.
// Each frame: poll input, update, draw, swap.
func Run(ctx *Context, state GameState) error {
	ctx.states = NewManager(state)
	ctx.running = true

	timer := NewDeltaTime()
	frameCount := 0
	fpsTimer := time.Now()

	ctx.Log.Info("starting game loop")

	for ctx.running {
		// 1. Process input
		if ctx.Input.Update() {
			break
		}
		for _, event := range ctx.Input.Events() {
			if !ctx.handleEvent(event) {
				continue
			}
			if err := ctx.states.Event(ctx, event); err != nil {
				return fmt.Errorf("event error: %w", err)
			}
		}
		if !ctx.running {
			break
		}

		// 2. Update
		ctx.DT = timer.Tick()
		if err := ctx.states.Update(ctx); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		ctx.Renderer.Begin()
		if err := ctx.states.Draw(ctx); err != nil {
			return fmt.Errorf("draw error: %w", err)
		}
		ctx.Renderer.End(ctx.Camera.ViewProjection(ctx.Window.Aspect()))
		ctx.runCaptures(ctx.Renderer.ReadPixels)

		// 4. Present
		ctx.Window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			ctx.Log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", ctx.DT*1000),
				zap.Int("line_vertices", ctx.Renderer.LastDrawn()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	ctx.Log.Info("game loop stopped")
	return nil
}

// CaptureFrame asks for the pixels of the current frame. fn runs once,
// after the frame is drawn and before it is presented.
func (c *Context) CaptureFrame(fn FrameFunc) {
	c.captures = append(c.captures, fn)
}

// runCaptures reads the back buffer once for all pending captures.
func (c *Context) runCaptures(read func() ([]byte, int, int)) {
	if len(c.captures) == 0 {
		return
	}
	pixels, w, h := read()
	for _, fn := range c.captures {
		fn(pixels, w, h)
	}
	clear(c.captures)
	c.captures = c.captures[:0]
}

// handleEvent applies engine-level bindings and reports whether the event
// should still reach the state.
func (c *Context) handleEvent(e input.Event) bool {
	switch e.Type {
	case input.EventWindowResize:
		c.Renderer.Resize(e.Width, e.Height)
	case input.EventKeyDown:
		if e.Key == sdl.SCANCODE_ESCAPE {
			c.running = false
			return false
		}
	case input.EventMouseMove:
		if e.Button&rightButtonMask != 0 {
			c.Camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
	case input.EventMouseWheel:
		c.Camera.HandleZoom(float32(e.DeltaY))
	}
	return true
}
