package components

import (
	"retrofps/internal/engine"
	"retrofps/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	// Channels the collider blocks. Zero means all.
	Channels engine.Channel
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center. Offset is local, so it turns
// with the object.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	scale := g.WorldScale()
	offset := rl.Vector3{X: b.Offset.X * scale.X, Y: b.Offset.Y * scale.Y, Z: b.Offset.Z * scale.Z}
	return rl.Vector3Add(g.WorldPosition(), engine.RotateEuler(offset, g.WorldRotation()))
}

// GetOBB returns the oriented world-space box.
func (b *BoxCollider) GetOBB() physics.OBB {
	g := b.GetGameObject()
	return physics.NewOBBFromBox(b.GetCenter(), b.Size, g.WorldRotation(), g.WorldScale())
}

// BlocksChannel implements physics.Collider
func (b *BoxCollider) BlocksChannel(ch engine.Channel) bool {
	return b.Channels == 0 || b.Channels&ch != 0
}

// IntersectRay implements physics.Collider
func (b *BoxCollider) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return b.GetOBB().IntersectRay(origin, direction, maxDistance)
}
