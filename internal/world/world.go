package world

import (
	"retrofps/internal/components"
	"retrofps/internal/engine"
	"retrofps/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

// World owns the scene and answers its queries. Components reach it through
// Scene.World.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
}

func New() *World {
	scene := engine.NewScene("Main")
	w := &World{
		Scene:   scene,
		Physics: physics.NewWorld(scene),
	}
	scene.World = w
	return w
}

// Start starts every object added so far.
func (w *World) Start() {
	w.Scene.Start()
}

// Update runs one frame: the early pass, where interact presses resolve,
// then the regular pass.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// GetCollidableObjects implements engine.WorldAccess
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Physics.GetCollidableObjects()
}

// Raycast implements engine.WorldAccess
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, query engine.RaycastQuery) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, query)
}

// Doors returns every door in the scene.
func (w *World) Doors() []*components.Door {
	var doors []*components.Door
	for _, g := range w.Scene.GameObjects {
		if d := engine.GetComponent[*components.Door](g); d != nil {
			doors = append(doors, d)
		}
	}
	return doors
}
