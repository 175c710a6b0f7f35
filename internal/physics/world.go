package physics

import (
	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit is a single ray intersection against one collider.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Collider is implemented by collider components. The world queries them
// through this interface so it never imports the components package.
type Collider interface {
	engine.Component
	BlocksChannel(ch engine.Channel) bool
	IntersectRay(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)
}

// World answers scene queries. It reads the scene and never mutates it.
type World struct {
	Scene *engine.Scene
}

func NewWorld(scene *engine.Scene) *World {
	return &World{Scene: scene}
}

// Raycast returns the nearest blocking hit along the ray, up to and including
// maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, query engine.RaycastQuery) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance < 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	hit := false

	for _, obj := range w.Scene.GameObjects {
		if !activeInHierarchy(obj) || ignored(&query, obj) {
			continue
		}
		for _, c := range obj.Components() {
			col, ok := c.(Collider)
			if !ok || !col.BlocksChannel(query.Channel) {
				continue
			}
			h, ok := col.IntersectRay(origin, direction, maxDistance)
			if !ok {
				continue
			}
			if !hit || h.Distance < closest.Distance {
				closest = engine.RaycastResult{
					GameObject: obj,
					Point:      h.Point,
					Normal:     h.Normal,
					Distance:   h.Distance,
				}
				hit = true
			}
		}
	}

	return closest, hit
}

// GetCollidableObjects returns all active GameObjects carrying a collider.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, obj := range w.Scene.GameObjects {
		if !activeInHierarchy(obj) {
			continue
		}
		for _, c := range obj.Components() {
			if _, ok := c.(Collider); ok {
				result = append(result, obj)
				break
			}
		}
	}
	return result
}

func activeInHierarchy(g *engine.GameObject) bool {
	for cur := g; cur != nil; cur = cur.Parent {
		if !cur.Active {
			return false
		}
	}
	return true
}

// ignored reports whether the query skips g or any of its ancestors.
func ignored(q *engine.RaycastQuery, g *engine.GameObject) bool {
	for cur := g; cur != nil; cur = cur.Parent {
		if q.Skips(cur) {
			return true
		}
	}
	return false
}
