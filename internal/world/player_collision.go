package world

import (
	"retrofps/internal/components"
	"retrofps/internal/engine"
	"retrofps/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision pushes its object out of every other box collider after
// movement. It runs after the PlayerController on the same object, so it
// must be added after it.
type PlayerCollision struct {
	engine.BaseComponent
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}

	var pc engine.PlayerController
	for _, c := range g.Components() {
		if v, ok := c.(engine.PlayerController); ok {
			pc = v
			break
		}
	}
	collider := engine.GetComponent[*components.BoxCollider](g)
	if pc == nil || collider == nil {
		return
	}

	// The body stays axis-aligned whatever the look yaw.
	bodyOBB := func() physics.OBB {
		return physics.NewAABBasOBB(collider.GetCenter(), collider.Size)
	}
	playerOBB := bodyOBB()

	for _, obj := range g.Scene.World.GetCollidableObjects() {
		if obj == g {
			continue
		}
		objCollider := engine.GetComponent[*components.BoxCollider](obj)
		if objCollider == nil || !objCollider.BlocksChannel(engine.ChannelPawn) {
			continue
		}

		pushOut := playerOBB.ResolveOBB(objCollider.GetOBB())
		if pushOut == (rl.Vector3{}) {
			continue
		}
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)

		_, vy, _ := pc.GetVelocity()
		if pushOut.Y > 0 {
			pc.SetVelocityY(0)
			pc.SetGrounded(true)
		}
		if pushOut.Y < 0 && vy > 0 {
			pc.SetVelocityY(0)
		}

		// Update OBB for subsequent checks
		playerOBB = bodyOBB()
	}
}
