package physics

import (
	"math"
	"testing"

	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testBox is a minimal axis-aligned collider for world queries.
type testBox struct {
	engine.BaseComponent
	size     rl.Vector3
	channels engine.Channel
}

func (b *testBox) BlocksChannel(ch engine.Channel) bool { return b.channels&ch != 0 }

func (b *testBox) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	g := b.GetGameObject()
	return NewAABBFromCenter(g.WorldPosition(), b.size).IntersectRay(origin, direction, maxDistance)
}

func addBox(scene *engine.Scene, name string, center rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = center
	g.AddComponent(&testBox{size: rl.Vector3{X: 1, Y: 1, Z: 1}, channels: engine.ChannelAll})
	scene.AddGameObject(g)
	return g
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestAABBIntersectRayFrontFace(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{Z: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{Z: 1}, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !near(hit.Distance, 4) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Normal != (rl.Vector3{Z: -1}) {
		t.Errorf("Expected -Z normal, got %v", hit.Normal)
	}
}

func TestAABBIntersectRayMaxDistanceInclusive(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{Z: 350.5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if _, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{Z: 1}, 350); !ok {
		t.Error("Hit exactly at max distance should count")
	}
	if _, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{Z: 1}, 349.99); ok {
		t.Error("Hit beyond max distance should not count")
	}
}

func TestAABBIntersectRayMissAndBehind(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{Z: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if _, ok := box.IntersectRay(rl.Vector3{X: 3}, rl.Vector3{Z: 1}, 100); ok {
		t.Error("Parallel ray outside the slab should miss")
	}
	if _, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{Z: -1}, 100); ok {
		t.Error("Box behind the origin should miss")
	}
}

func TestOBBIntersectRayRotated(t *testing.T) {
	// A thin panel 2 wide along X, rotated 90 degrees so it spans Z instead
	panel := NewOBB(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 0.2}, rl.Vector3{Y: 90})

	// Ray along +X hits the broad face (thin axis now along X)
	hit, ok := panel.IntersectRay(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("Expected hit on rotated panel")
	}
	if !near(hit.Distance, 4.9) {
		t.Errorf("Expected distance 4.9, got %f", hit.Distance)
	}
	if !near(hit.Normal.X, -1) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}

	// The unrotated 2-wide extent along X no longer exists: a ray along +Z
	// at x=5.5 passes beside the panel.
	if _, ok := panel.IntersectRay(rl.Vector3{X: 5.5, Z: -10}, rl.Vector3{Z: 1}, 100); ok {
		t.Error("Ray beside the rotated panel should miss")
	}
}

func TestRaySphere(t *testing.T) {
	hit, ok := RaySphere(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{X: 10}, 1, 100)
	if !ok || !near(hit.Distance, 9) {
		t.Fatalf("Expected hit at 9, got %v %v", hit, ok)
	}
	if _, ok := RaySphere(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{X: 10}, 1, 8); ok {
		t.Error("Sphere beyond range should miss")
	}
}

func TestOBBResolvePushesOut(t *testing.T) {
	player := NewAABBasOBB(rl.Vector3{X: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	wall := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 1, Y: 4, Z: 4})

	push := player.ResolveOBB(wall)
	if !near(push.X, 0.1) || !near(push.Y, 0) || !near(push.Z, 0) {
		t.Errorf("Expected push (0.1, 0, 0), got %v", push)
	}
}

func TestWorldRaycastNearestWins(t *testing.T) {
	scene := engine.NewScene("Test")
	far := addBox(scene, "Far", rl.Vector3{Z: 10})
	nearBox := addBox(scene, "Near", rl.Vector3{Z: 5})
	w := NewWorld(scene)

	res, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 2}, 100, engine.NewRaycastQuery(engine.ChannelVisibility))
	if !ok {
		t.Fatal("Expected hit")
	}
	if res.GameObject != nearBox {
		t.Errorf("Expected nearest box, got %s", res.GameObject.Name)
	}
	_ = far
}

func TestWorldRaycastIgnoresAndFilters(t *testing.T) {
	scene := engine.NewScene("Test")
	self := addBox(scene, "Self", rl.Vector3{})
	ghost := addBox(scene, "Ghost", rl.Vector3{Z: 3})
	engine.GetComponent[*testBox](ghost).channels = engine.ChannelPawn
	target := addBox(scene, "Target", rl.Vector3{Z: 6})
	w := NewWorld(scene)

	res, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, engine.NewRaycastQuery(engine.ChannelVisibility, self))
	if !ok || res.GameObject != target {
		t.Fatalf("Expected to pass through self and ghost, got %v", res.GameObject)
	}
}

func TestWorldRaycastSkipsInactiveHierarchy(t *testing.T) {
	scene := engine.NewScene("Test")
	parent := engine.NewGameObject("Parent")
	scene.AddGameObject(parent)
	child := addBox(scene, "Child", rl.Vector3{Z: 3})
	parent.AddChild(child)
	parent.Active = false
	w := NewWorld(scene)

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100, engine.NewRaycastQuery(engine.ChannelAll)); ok {
		t.Error("Children of inactive objects should not block")
	}
	if n := len(w.GetCollidableObjects()); n != 0 {
		t.Errorf("Expected no collidable objects, got %d", n)
	}
}

func TestWorldRaycastZeroDirection(t *testing.T) {
	scene := engine.NewScene("Test")
	addBox(scene, "Box", rl.Vector3{})
	w := NewWorld(scene)

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{}, 100, engine.NewRaycastQuery(engine.ChannelAll)); ok {
		t.Error("Zero direction should never hit")
	}
}
