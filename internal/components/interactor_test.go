package components

import (
	"testing"

	"retrofps/internal/engine"
	"retrofps/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// addPlayer puts a viewer at the origin looking down +Z with its own box.
func addPlayer(scene *engine.Scene, in ActionInput) (*engine.GameObject, *Interactor) {
	player := engine.NewGameObject("Player")
	player.AddComponent(&fixedLook{dir: rl.Vector3{Z: 1}})
	player.AddComponent(NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 1}))
	it := NewInteractor(in)
	player.AddComponent(it)
	scene.AddGameObject(player)
	return player, it
}

func TestInteractNoHit(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	scene.Start()

	if got := it.Interact(); got != nil {
		t.Errorf("expected no target, got %s", got.Name)
	}
}

func TestInteractIgnoresNonInteractable(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	wall := engine.NewGameObject("Wall")
	wall.Transform.Position = rl.Vector3{Z: 3}
	wall.AddComponent(NewBoxCollider(rl.Vector3{X: 4, Y: 4, Z: 0.5}))
	scene.AddGameObject(wall)
	scene.Start()

	if got := it.Interact(); got != nil {
		t.Errorf("wall should not be interactable, got %s", got.Name)
	}
}

func TestInteractTriggersOnceWithRequester(t *testing.T) {
	scene := newTestScene()
	player, it := addPlayer(scene, nil)
	target := engine.NewGameObject("Button")
	target.Transform.Position = rl.Vector3{Z: 4}
	target.AddComponent(NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	counter := &pressCounter{}
	target.AddComponent(counter)
	scene.AddGameObject(target)
	scene.Start()

	var fired []*engine.GameObject
	it.OnInteracted.AddListener(func(g *engine.GameObject) { fired = append(fired, g) })

	if got := it.Interact(); got != target {
		t.Fatalf("expected Button, got %v", got)
	}
	if counter.calls != 1 {
		t.Errorf("expected 1 call, got %d", counter.calls)
	}
	if counter.requester != player {
		t.Error("requester should be the interactor's owner")
	}
	if len(fired) != 1 || fired[0] != target {
		t.Errorf("OnInteracted should fire once with the target, got %v", fired)
	}
}

func TestInteractRangeIsInclusive(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	// Panel front face sits exactly 5 units away.
	_, door := addDoor(scene, rl.Vector3{Z: 6}, linearDoorConfig())
	scene.Start()

	it.MaxRange = 4.99
	if it.Interact() != nil {
		t.Error("door beyond range should not trigger")
	}
	if door.State() != DoorClosed {
		t.Errorf("expected Closed, got %v", door.State())
	}

	it.MaxRange = 5
	if it.Interact() == nil {
		t.Fatal("door exactly at range should trigger")
	}
	if door.State() != DoorOpening {
		t.Errorf("expected Opening, got %v", door.State())
	}
}

func TestInteractHitsChildFindsParentDoor(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	frame, door := addDoor(scene, rl.Vector3{Z: 4}, linearDoorConfig())
	scene.Start()

	if got := it.Interact(); got != frame {
		t.Fatalf("expected the door frame, got %v", got)
	}
	if door.State() != DoorOpening {
		t.Errorf("expected Opening, got %v", door.State())
	}
}

func TestInteractNearestBlockingHitWins(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	wall := engine.NewGameObject("Wall")
	wall.Transform.Position = rl.Vector3{Z: 2}
	wall.AddComponent(NewBoxCollider(rl.Vector3{X: 4, Y: 4, Z: 0.5}))
	scene.AddGameObject(wall)
	_, door := addDoor(scene, rl.Vector3{Z: 5}, linearDoorConfig())
	scene.Start()

	if it.Interact() != nil {
		t.Error("wall in front should block the door")
	}
	if door.State() != DoorClosed {
		t.Errorf("expected Closed, got %v", door.State())
	}
}

func TestInteractChannelFilter(t *testing.T) {
	scene := newTestScene()
	_, it := addPlayer(scene, nil)
	glass := engine.NewGameObject("Glass")
	glass.Transform.Position = rl.Vector3{Z: 2}
	box := NewBoxCollider(rl.Vector3{X: 4, Y: 4, Z: 0.5})
	box.Channels = engine.ChannelPawn
	glass.AddComponent(box)
	scene.AddGameObject(glass)
	frame, _ := addDoor(scene, rl.Vector3{Z: 5}, linearDoorConfig())
	scene.Start()

	if got := it.Interact(); got != frame {
		t.Errorf("pawn-only collider should not block visibility, got %v", got)
	}
}

func TestInteractorEarlyUpdateOnPress(t *testing.T) {
	scene := newTestScene()
	in := newFakeInput()
	_, it := addPlayer(scene, in)
	frame, door := addDoor(scene, rl.Vector3{Z: 4}, linearDoorConfig())
	scene.Start()

	scene.Update(0.1)
	if door.State() != DoorClosed {
		t.Fatalf("no press, expected Closed, got %v", door.State())
	}
	if it.Target() != frame {
		t.Error("door under the crosshair should be the focus target")
	}

	in.press(input.ActionInteract)
	scene.Update(0.1)
	in.endFrame()
	if door.State() != DoorOpening {
		t.Fatalf("expected Opening, got %v", door.State())
	}
	if door.Progress() != 0 {
		t.Errorf("door should not move on the trigger frame, got %f", door.Progress())
	}

	// Holding the key does not retrigger.
	scene.Update(0.1)
	if door.State() != DoorOpening {
		t.Errorf("expected still Opening, got %v", door.State())
	}
	if !approx(door.Progress(), 0.1) {
		t.Errorf("expected progress 0.1, got %f", door.Progress())
	}
}

func TestInteractorWithoutLookProvider(t *testing.T) {
	scene := newTestScene()
	g := engine.NewGameObject("Turret")
	it := NewInteractor(nil)
	g.AddComponent(it)
	scene.AddGameObject(g)
	scene.Start()

	if it.Interact() != nil {
		t.Error("no view pose means no interaction")
	}
}
