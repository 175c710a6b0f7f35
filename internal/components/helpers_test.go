package components

import (
	"math"

	"retrofps/internal/engine"
	"retrofps/internal/input"
	"retrofps/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeInput is a scripted ActionInput for a single frame at a time.
type fakeInput struct {
	down     map[input.Action]bool
	pressed  map[input.Action]bool
	released map[input.Action]bool
	moveX    float32
	moveY    float32
	lookX    float32
	lookY    float32
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		down:     map[input.Action]bool{},
		pressed:  map[input.Action]bool{},
		released: map[input.Action]bool{},
	}
}

func (f *fakeInput) Down(a input.Action) bool     { return f.down[a] }
func (f *fakeInput) Pressed(a input.Action) bool  { return f.pressed[a] }
func (f *fakeInput) Released(a input.Action) bool { return f.released[a] }
func (f *fakeInput) MoveAxis() (x, y float32)     { return f.moveX, f.moveY }
func (f *fakeInput) LookAxis() (x, y float32)     { return f.lookX, f.lookY }

// press marks a as pressed for the next frame only.
func (f *fakeInput) press(a input.Action) {
	f.pressed[a] = true
	f.down[a] = true
}

func (f *fakeInput) endFrame() {
	clear(f.pressed)
	clear(f.released)
}

// fixedLook is a LookProvider pointing along a constant direction.
type fixedLook struct {
	engine.BaseComponent
	dir rl.Vector3
	eye float32
}

func (l *fixedLook) GetLookDirection() (x, y, z float32) { return l.dir.X, l.dir.Y, l.dir.Z }
func (l *fixedLook) GetEyeHeight() float32               { return l.eye }

// pressCounter counts OnInteract calls.
type pressCounter struct {
	engine.BaseComponent
	calls     int
	requester *engine.GameObject
}

func (p *pressCounter) OnInteract(requester *engine.GameObject) {
	p.calls++
	p.requester = requester
}

func newTestScene() *engine.Scene {
	scene := engine.NewScene("test")
	scene.World = physics.NewWorld(scene)
	return scene
}

// addDoor builds a frame at pos with a panel child carrying a 2x2x2 box.
func addDoor(scene *engine.Scene, pos rl.Vector3, cfg DoorConfig) (*engine.GameObject, *Door) {
	frame := engine.NewGameObject("Door")
	frame.Transform.Position = pos
	panel := engine.NewGameObject("Panel")
	panel.AddComponent(NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2}))
	frame.AddChild(panel)

	door := NewDoor(cfg)
	frame.AddComponent(door)
	scene.AddGameObject(frame)
	scene.AddGameObject(panel)
	return frame, door
}

func linearDoorConfig() DoorConfig {
	cfg := DefaultDoorConfig()
	cfg.Curve = "Linear"
	cfg.Duration = 1
	return cfg
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}
