package world

import (
	"retrofps/internal/components"
	"retrofps/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the floor and every BoxMesh in flat color.
type Renderer struct {
	FloorColor rl.Color
	// Wireframes outlines every box collider.
	Wireframes bool
}

func NewRenderer() *Renderer {
	return &Renderer{FloorColor: rl.LightGray}
}

func (r *Renderer) Draw(gameObjects []*engine.GameObject) {
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: FloorSize, Y: FloorSize}, r.FloorColor)
	rl.DrawGrid(int32(FloorSize), 1)

	for _, g := range gameObjects {
		if mesh := engine.GetComponent[*components.BoxMesh](g); mesh != nil {
			drawBox(g, mesh)
		}
		if r.Wireframes {
			if col := engine.GetComponent[*components.BoxCollider](g); col != nil {
				drawColliderWires(g, col)
			}
		}
	}
}

func drawBox(g *engine.GameObject, mesh *components.BoxMesh) {
	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	// rlgl applies the last call first: X, then Y, then Z, then translate.
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)
	rl.DrawCubeV(mesh.Offset, mesh.Size, mesh.Color)
	rl.DrawCubeWiresV(mesh.Offset, mesh.Size, rl.DarkGray)
	rl.PopMatrix()
}

func drawColliderWires(g *engine.GameObject, col *components.BoxCollider) {
	center := col.GetCenter()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(center.X, center.Y, center.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)
	rl.DrawCubeWiresV(rl.Vector3Zero(), col.Size, rl.Magenta)
	rl.PopMatrix()
}
