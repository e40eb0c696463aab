package main

import (
	"path/filepath"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/bugsyth/bugsyth-engine/internal/engine/debug"
	"github.com/bugsyth/bugsyth-engine/internal/engine/input"
	"github.com/bugsyth/bugsyth-engine/internal/engine/picking"
	"github.com/bugsyth/bugsyth-engine/internal/game"
	"github.com/bugsyth/bugsyth-engine/internal/scene"
	"github.com/bugsyth/bugsyth-engine/pkg/math"
	"github.com/bugsyth/bugsyth-engine/pkg/physics"
)

type heldKeys map[sdl.Scancode]bool

func (h heldKeys) IsKeyDown(k sdl.Scancode) bool { return h[k] }

func TestPlayerMotion(t *testing.T) {
	tests := []struct {
		name string
		keys heldKeys
		want math.Vec3
	}{
		{"idle drifts down", heldKeys{}, math.Vec3{Y: -0.5}},
		{"I moves +x", heldKeys{sdl.SCANCODE_I: true}, math.Vec3{X: 1, Y: -0.5}},
		{"K moves -x", heldKeys{sdl.SCANCODE_K: true}, math.Vec3{X: -1, Y: -0.5}},
		{"J moves +z", heldKeys{sdl.SCANCODE_J: true}, math.Vec3{Y: -0.5, Z: 1}},
		{"L moves -z", heldKeys{sdl.SCANCODE_L: true}, math.Vec3{Y: -0.5, Z: -1}},
		{"opposites cancel", heldKeys{sdl.SCANCODE_I: true, sdl.SCANCODE_K: true}, math.Vec3{Y: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// speed 2, gravity 1, half a second
			if got := playerMotion(tt.keys, 2, 1, 0.5); got != tt.want {
				t.Errorf("playerMotion = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContactTracker(t *testing.T) {
	tr := newContactTracker()

	if !tr.touch(1, 2) {
		t.Error("first touch should begin a contact")
	}
	if tr.touch(2, 1) {
		t.Error("same pair in the same frame should not begin again")
	}
	if n := tr.endFrame(); n != 1 {
		t.Errorf("endFrame = %d, want 1", n)
	}

	if tr.touch(1, 2) {
		t.Error("continuing contact should not begin again")
	}
	tr.endFrame()

	// A frame without the pair ends the contact.
	tr.endFrame()
	if !tr.touch(2, 1) {
		t.Error("contact after a gap should begin again")
	}

	tr.reset()
	if !tr.touch(1, 2) {
		t.Error("reset should forget previous contacts")
	}
}

func TestSceneBounds(t *testing.T) {
	world := physics.NewWorld()
	bodies, err := scene.Default().Build(world)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	lo, hi := sceneBounds(bodies)
	if lo != (math.Vec3{}) {
		t.Errorf("lo = %v, want origin", lo)
	}
	if hi != (math.Vec3{X: 20, Y: 4, Z: 20}) {
		t.Errorf("hi = %v, want (20,4,20)", hi)
	}

	if lo, hi := sceneBounds(nil); lo != hi {
		t.Errorf("empty bounds = %v %v", lo, hi)
	}
}

func TestDemoResetTracksPlayer(t *testing.T) {
	d := newDemo(scene.Default(), nil)
	if err := d.reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if d.player == nil {
		t.Fatal("player not resolved")
	}
	if d.world.Len() != 5 {
		t.Errorf("world has %d bodies, want 5", d.world.Len())
	}

	// Sink the player into the pillar's top and let the world push it out.
	d.player.Shape.Translate(math.Vec3{X: -1.5, Y: -0.25, Z: -1.5})
	d.world.Update()
	if len(d.touching) == 0 {
		t.Error("expected contact callback to mark bodies")
	}
}

func TestPickBody(t *testing.T) {
	bodies, err := scene.Default().Build(physics.NewWorld())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name string
		ray  picking.Ray
		want string
		hit  bool
	}{
		// Straight down onto the pillar, which sits on the floor.
		{"nearest wins", picking.Ray{Origin: math.Vec3{X: 0.5, Y: 10, Z: 0.5}, Direction: math.Vec3{Y: -1}}, "pillar", true},
		{"open floor", picking.Ray{Origin: math.Vec3{X: 10, Y: 10, Z: 10}, Direction: math.Vec3{Y: -1}}, "floor", true},
		{"ball from the side", picking.Ray{Origin: math.Vec3{X: 4, Y: 2.6, Z: -5}, Direction: math.Vec3{Z: 1}}, "ball", true},
		{"sky", picking.Ray{Origin: math.Vec3{Y: 10}, Direction: math.Vec3{Y: 1}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := pickBody(tt.ray, bodies)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && bodies[i].Name != tt.want {
				t.Errorf("picked %s, want %s", bodies[i].Name, tt.want)
			}
		})
	}
}

func TestScreenshotWaitsForFrame(t *testing.T) {
	dir := t.TempDir()
	d := newDemo(scene.Default(), nil)
	d.shots = debug.NewScreenshotCapture(dir, "test")

	// F12 only queues the capture; nothing touches the renderer here.
	ctx := &game.Context{}
	if err := d.Event(ctx, input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_F12}); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if files, _ := filepath.Glob(filepath.Join(dir, "*.png")); len(files) != 0 {
		t.Fatalf("screenshot written before the frame was drawn: %v", files)
	}

	d.saveScreenshot([]byte{255, 0, 0, 255}, 1, 1)
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("screenshots = %v, want one file", files)
	}
}
