package components

import (
	"math"

	"retrofps/internal/engine"
	"retrofps/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActionInput is the per-frame semantic input a pawn reads. *input.Mapper
// implements it.
type ActionInput interface {
	Down(a input.Action) bool
	Pressed(a input.Action) bool
	Released(a input.Action) bool
	MoveAxis() (x, y float32)
	LookAxis() (x, y float32)
}

// PlayerController is the first-person pawn: look, walk, sprint, jump and
// gravity. Transform.Position is the feet; the view sits EyeHeight above.
type PlayerController struct {
	engine.BaseComponent
	Input ActionInput

	Yaw              float32
	Pitch            float32
	MoveSpeed        float32
	SprintMultiplier float32
	Gravity          float32
	JumpStrength     float32
	EyeHeight        float32

	// Runtime state
	velocity  rl.Vector3
	grounded  bool
	sprinting bool
}

func NewPlayerController(in ActionInput) *PlayerController {
	return &PlayerController{
		Input:            in,
		MoveSpeed:        6.0,
		SprintMultiplier: 1.8,
		Gravity:          20.0,
		JumpStrength:     7.0,
		EyeHeight:        1.6,
	}
}

func (p *PlayerController) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Input == nil {
		return
	}

	// Mouse look
	lx, ly := p.Input.LookAxis()
	p.Yaw -= lx
	p.Pitch -= ly

	// Clamp pitch
	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}

	if p.Input.Pressed(input.ActionSprint) {
		p.sprinting = true
	}
	if p.Input.Released(input.ActionSprint) {
		p.sprinting = false
	}

	// Horizontal movement relative to yaw
	forward, right := p.getDirections()
	mx, my := p.Input.MoveAxis()
	moveDir := rl.Vector3{
		X: forward.X*my + right.X*mx,
		Z: forward.Z*my + right.Z*mx,
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	speed := p.MoveSpeed
	if p.sprinting {
		speed *= p.SprintMultiplier
	}
	p.velocity.X = moveDir.X * speed
	p.velocity.Z = moveDir.Z * speed

	// Jump
	if p.Input.Pressed(input.ActionJump) && p.grounded {
		p.velocity.Y = p.JumpStrength
		p.grounded = false
	}

	// Apply gravity
	if !p.grounded {
		p.velocity.Y -= p.Gravity * deltaTime
	}

	g.Transform.Position.X += p.velocity.X * deltaTime
	g.Transform.Position.Y += p.velocity.Y * deltaTime
	g.Transform.Position.Z += p.velocity.Z * deltaTime

	// Floor is at Y=0
	if g.Transform.Position.Y <= 0 {
		g.Transform.Position.Y = 0
		p.velocity.Y = 0
		p.grounded = true
	} else {
		p.grounded = false
	}

	g.Transform.Rotation.Y = p.Yaw
}

// getDirections returns the horizontal forward and right vectors for the
// current yaw.
func (p *PlayerController) getDirections() (forward, right rl.Vector3) {
	forward = engine.YawForward(p.Yaw)
	right = rl.Vector3{X: -forward.Z, Y: 0, Z: forward.X}
	return
}

// GetLookDirection implements engine.LookProvider
func (p *PlayerController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(p.Yaw) * math.Pi / 180
	pitchRad := float64(p.Pitch) * math.Pi / 180
	return float32(math.Sin(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Cos(yawRad) * math.Cos(pitchRad))
}

// GetEyeHeight implements engine.LookProvider
func (p *PlayerController) GetEyeHeight() float32 {
	return p.EyeHeight
}

func (p *PlayerController) Grounded() bool {
	return p.grounded
}

func (p *PlayerController) SetGrounded(grounded bool) {
	p.grounded = grounded
}

// SetVelocityY sets the vertical velocity (used by collision)
func (p *PlayerController) SetVelocityY(vy float32) {
	p.velocity.Y = vy
}

func (p *PlayerController) GetVelocity() (x, y, z float32) {
	return p.velocity.X, p.velocity.Y, p.velocity.Z
}

func (p *PlayerController) Sprinting() bool {
	return p.sprinting
}
