package components

import (
	"retrofps/internal/engine"
	"retrofps/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius   float32
	Offset   rl.Vector3
	Channels engine.Channel
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// BlocksChannel implements physics.Collider
func (s *SphereCollider) BlocksChannel(ch engine.Channel) bool {
	return s.Channels == 0 || s.Channels&ch != 0
}

// IntersectRay implements physics.Collider
func (s *SphereCollider) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	return physics.RaySphere(origin, direction, s.GetCenter(), s.Radius, maxDistance)
}
