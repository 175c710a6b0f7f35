package components

import (
	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxMesh is a flat-colored box drawn at the object's world transform.
// Offset is local, so a door leaf can hang off its hinge.
type BoxMesh struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Color  rl.Color
}

func NewBoxMesh(size rl.Vector3, color rl.Color) *BoxMesh {
	return &BoxMesh{Size: size, Color: color}
}
