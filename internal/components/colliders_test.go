package components

import (
	"testing"

	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestBoxColliderOffsetFollowsYaw(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Position = rl.Vector3{X: 1}
	g.Transform.Rotation.Y = 90
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.Offset = rl.Vector3{Z: 1}
	g.AddComponent(box)

	c := box.GetCenter()
	if !approx(c.X, 2) || !approx(c.Z, 0) {
		t.Errorf("expected center (2,0,0), got %v", c)
	}
}

func TestBoxColliderChannels(t *testing.T) {
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	if !box.BlocksChannel(engine.ChannelVisibility) {
		t.Error("zero mask should block every channel")
	}
	box.Channels = engine.ChannelPawn
	if box.BlocksChannel(engine.ChannelVisibility) {
		t.Error("pawn-only box should not block visibility")
	}
	if !box.BlocksChannel(engine.ChannelPawn) {
		t.Error("pawn-only box should block pawn")
	}
}

func TestSphereColliderIntersectRay(t *testing.T) {
	g := engine.NewGameObject("Ball")
	g.Transform.Position = rl.Vector3{Z: 10}
	s := NewSphereCollider(1)
	g.AddComponent(s)

	hit, ok := s.IntersectRay(rl.Vector3{}, rl.Vector3{Z: 1}, 20)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approx(hit.Distance, 9) {
		t.Errorf("expected distance 9, got %f", hit.Distance)
	}
}

func TestCameraFollowsLookProvider(t *testing.T) {
	g := engine.NewGameObject("Player")
	g.Transform.Position = rl.Vector3{X: 1}
	g.AddComponent(&fixedLook{dir: rl.Vector3{X: 1}, eye: 1.5})
	cam := NewCamera()
	g.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	if !approx(rc.Position.Y, 1.5) {
		t.Errorf("expected eye height 1.5, got %f", rc.Position.Y)
	}
	if !approx(rc.Target.X, 2) {
		t.Errorf("expected target one unit along +X, got %v", rc.Target)
	}
}

func TestRotatorIsTheOnlyScript(t *testing.T) {
	if c := engine.CreateScript("Door", nil); c != nil {
		t.Errorf("doors load as scene components, not scripts; got %T", c)
	}
	r, ok := engine.CreateScript("Rotator", map[string]any{"speed": 45.0}).(*Rotator)
	if !ok {
		t.Fatal("expected *Rotator")
	}
	if r.Speed != 45 {
		t.Errorf("expected speed 45, got %f", r.Speed)
	}
}
