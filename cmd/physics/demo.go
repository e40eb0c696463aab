package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/internal/engine/audio"
	"github.com/bugsyth/bugsyth-engine/internal/engine/debug"
	"github.com/bugsyth/bugsyth-engine/internal/engine/input"
	"github.com/bugsyth/bugsyth-engine/internal/engine/picking"
	"github.com/bugsyth/bugsyth-engine/internal/game"
	"github.com/bugsyth/bugsyth-engine/internal/scene"
	"github.com/bugsyth/bugsyth-engine/pkg/math"
	"github.com/bugsyth/bugsyth-engine/pkg/physics"
)

var (
	gridColor     = [3]float32{0.25, 0.25, 0.3}
	contactColor  = [3]float32{1, 1, 1}
	selectedColor = [3]float32{1, 0.9, 0.1}
)

// demo is the game state: one physics world built from a scene.
type demo struct {
	scene *scene.Scene
	log   *zap.Logger

	world    *physics.World
	bodies   []scene.Body
	player   *physics.Object
	contacts *contactTracker
	touching map[physics.Handle]bool
	selected *scene.Body

	audio  *audio.Manager
	impact *audio.Sound
	shots  *debug.ScreenshotCapture
	grid   []float32

	statsTimer float32
	frames     int
	totals     physics.UpdateStats
}

func newDemo(sc *scene.Scene, log *zap.Logger) *demo {
	if log == nil {
		log = zap.NewNop()
	}
	return &demo{
		scene:    sc,
		log:      log,
		contacts: newContactTracker(),
		touching: make(map[physics.Handle]bool),
		shots:    debug.NewScreenshotCapture("screenshots", "physics"),
	}
}

func (d *demo) Init(ctx *game.Context) error {
	d.audio = ctx.Audio
	if path := ctx.Config.Audio.ImpactSound; path != "" {
		s, err := audio.LoadSound(path)
		if err != nil {
			// Sound is optional; keep running silent.
			d.log.Warn("impact sound unavailable", zap.String("path", path), zap.Error(err))
		} else {
			d.impact = s
			d.log.Info("impact sound loaded", zap.String("path", path), zap.Duration("length", s.Duration()))
		}
	}

	if err := d.reset(); err != nil {
		return err
	}

	lo, hi := sceneBounds(d.bodies)
	ctx.Camera.FitToBounds(lo, hi)
	d.grid = debug.GenerateGridVertices(20, 1, lo.Y)

	d.log.Info("scene ready",
		zap.Int("bodies", len(d.bodies)),
		zap.String("player", d.scene.Player),
	)
	return nil
}

// reset rebuilds the world from the scene description.
func (d *demo) reset() error {
	d.world = physics.NewWorld(
		physics.WithLogger(d.log),
		physics.WithContactFunc(d.onContact),
	)
	bodies, err := d.scene.Build(d.world)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	d.bodies = bodies
	d.player = nil
	d.selected = nil
	if b, ok := scene.Find(bodies, d.scene.Player); ok {
		d.player = b.Object
	}
	d.contacts.reset()
	return nil
}

func (d *demo) onContact(a, b physics.Handle, mtv math.Vec3) {
	d.touching[a] = true
	d.touching[b] = true
	if !d.contacts.touch(a, b) || d.impact == nil || d.audio == nil {
		return
	}
	// Louder for deeper hits; a frame's push is rarely more than a few centimetres.
	volume := min(float64(mtv.Length())*20, 1)
	if err := d.audio.Play(d.impact, volume, 1); err != nil {
		d.log.Debug("impact sound skipped", zap.Error(err))
	}
}

func (d *demo) Update(ctx *game.Context) error {
	if d.player != nil {
		d.player.Shape.Translate(playerMotion(ctx.Input, ctx.Config.Physics.PlayerSpeed, ctx.Config.Physics.Gravity, ctx.DT))
	}

	clear(d.touching)
	stats := d.world.Update()
	d.contacts.endFrame()

	if ctx.Config.Physics.ShowStats {
		d.frames++
		d.totals.Pairs += stats.Pairs
		d.totals.Contacts += stats.Contacts
		d.statsTimer += ctx.DT
		if d.statsTimer >= 1 {
			d.log.Info("physics stats",
				zap.Int("frames", d.frames),
				zap.Int("pairs", d.totals.Pairs),
				zap.Int("contacts", d.totals.Contacts),
			)
			ctx.Window.SetTitle(fmt.Sprintf("%s | %d bodies | %d contacts/s",
				ctx.Config.Window.Title, d.world.Len(), d.totals.Contacts))
			d.statsTimer, d.frames, d.totals = 0, 0, physics.UpdateStats{}
		}
	}
	return nil
}

func (d *demo) Draw(ctx *game.Context) error {
	ctx.Renderer.Lines(d.grid, gridColor)
	for _, b := range d.bodies {
		color := b.Color
		switch {
		case d.selected != nil && d.selected.Handle == b.Handle:
			color = selectedColor
		case d.touching[b.Handle]:
			color = contactColor
		}
		ctx.Renderer.Lines(debug.ShapeWireframeVertices(b.Object.Shape), color)
	}
	return nil
}

func (d *demo) Event(ctx *game.Context, e input.Event) error {
	if e.Type == input.EventMouseDown && e.Button == sdl.BUTTON_LEFT {
		d.pick(ctx, e.MouseX, e.MouseY)
		return nil
	}
	if e.Type != input.EventKeyDown {
		return nil
	}
	switch e.Key {
	case sdl.SCANCODE_R:
		d.log.Info("resetting scene")
		return d.reset()
	case sdl.SCANCODE_F12:
		ctx.CaptureFrame(d.saveScreenshot)
	}
	return nil
}

// saveScreenshot writes a captured frame to the screenshot directory.
func (d *demo) saveScreenshot(pixels []byte, w, h int) {
	path, err := d.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	d.log.Info("screenshot saved", zap.String("path", path))
}

// pick selects the body under the cursor and logs where it is.
func (d *demo) pick(ctx *game.Context, x, y int) {
	w, h := ctx.Window.GetSize()
	if w == 0 || h == 0 {
		return
	}
	ndcX, ndcY := picking.ScreenToNDC(float32(x), float32(y), float32(w), float32(h))
	cam := ctx.Camera
	ray := picking.CameraRay(cam.Position(), cam.Center, math.Vec3{Y: 1}, cam.FovY, float32(w)/float32(h), ndcX, ndcY)

	i, ok := pickBody(ray, d.bodies)
	if !ok {
		d.selected = nil
		return
	}
	d.selected = &d.bodies[i]
	d.log.Info("body selected",
		zap.String("name", d.selected.Name),
		zap.Stringer("collider", d.selected.Object.Collider),
		zap.Any("position", d.selected.Object.Shape.Position()),
	)
}

// pickBody returns the index of the nearest body the ray hits.
func pickBody(ray picking.Ray, bodies []scene.Body) (int, bool) {
	best, bestT := -1, float32(0)
	for i, b := range bodies {
		t, hit := ray.IntersectShape(b.Object.Shape)
		if hit && (best < 0 || t < bestT) {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}

// keyState is the slice of input the player controls read.
type keyState interface {
	IsKeyDown(sdl.Scancode) bool
}

// playerMotion returns this frame's player translation: a constant downward
// drift plus I/K along X and J/L along Z.
func playerMotion(keys keyState, speed, gravity, dt float32) math.Vec3 {
	step := speed * dt
	t := math.Vec3{Y: -gravity * dt}
	if keys.IsKeyDown(sdl.SCANCODE_I) {
		t.X += step
	}
	if keys.IsKeyDown(sdl.SCANCODE_K) {
		t.X -= step
	}
	if keys.IsKeyDown(sdl.SCANCODE_J) {
		t.Z += step
	}
	if keys.IsKeyDown(sdl.SCANCODE_L) {
		t.Z -= step
	}
	return t
}

// sceneBounds returns the box enclosing every body.
func sceneBounds(bodies []scene.Body) (math.Vec3, math.Vec3) {
	if len(bodies) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	var lo, hi math.Vec3
	for i, b := range bodies {
		var bl, bh math.Vec3
		switch s := b.Object.Shape.(type) {
		case *physics.AABB:
			bl, bh = s.Min, s.Max
		case *physics.Sphere:
			r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
			bl, bh = s.Center.Sub(r), s.Center.Add(r)
		}
		if i == 0 {
			lo, hi = bl, bh
			continue
		}
		lo = math.Vec3{X: min(lo.X, bl.X), Y: min(lo.Y, bl.Y), Z: min(lo.Z, bl.Z)}
		hi = math.Vec3{X: max(hi.X, bh.X), Y: max(hi.Y, bh.Y), Z: max(hi.Z, bh.Z)}
	}
	return lo, hi
}
