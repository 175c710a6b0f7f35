package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// EarlyUpdater is implemented by components that must run before the regular
// Update pass of the same frame. Interaction queries live here so a trigger is
// resolved before any door samples its animation.
type EarlyUpdater interface {
	EarlyUpdate(deltaTime float32)
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera and by interaction queries as the view pose.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// PlayerController is implemented by components that handle player movement.
// Used by collision systems to sync velocity and grounded state.
type PlayerController interface {
	LookProvider
	GetVelocity() (x, y, z float32)
	SetVelocityY(vy float32)
	Grounded() bool
	SetGrounded(grounded bool)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
