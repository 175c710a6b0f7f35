package components

import (
	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders from its object's view pose. It follows a LookProvider on
// the same object, or the object's yaw when there is none.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	forward := g.Forward()
	if look := findLookProvider(g); look != nil {
		eyePos.Y += look.GetEyeHeight()
		x, y, z := look.GetLookDirection()
		forward = rl.Vector3{X: x, Y: y, Z: z}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
