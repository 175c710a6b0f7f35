package components

import (
	"retrofps/internal/engine"
	"retrofps/internal/input"
	"retrofps/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultInteractRange is the interact ray length when none is configured.
const DefaultInteractRange = 350

// Interactor casts the interact ray from its owner's view pose. The owner
// must carry an engine.LookProvider; the ray starts at the owner's position
// raised by the eye height.
type Interactor struct {
	engine.BaseComponent
	MaxRange float32
	Channel  engine.Channel
	Input    ActionInput

	// OnInteracted fires with the object whose Interactable was triggered.
	OnInteracted engine.EventWithArg[*engine.GameObject]

	target engine.GameObjectRef
}

func NewInteractor(in ActionInput) *Interactor {
	return &Interactor{
		MaxRange: DefaultInteractRange,
		Channel:  engine.ChannelVisibility,
		Input:    in,
	}
}

// EarlyUpdate resolves an interact press before doors sample their swing
// this frame, then refreshes the focused target for the HUD.
func (i *Interactor) EarlyUpdate(deltaTime float32) {
	if i.Input != nil && i.Input.Pressed(input.ActionInteract) {
		i.Interact()
	}
	i.refreshTarget()
}

// ViewPose returns the ray origin and direction.
func (i *Interactor) ViewPose() (origin, direction rl.Vector3, ok bool) {
	g := i.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	look := findLookProvider(g)
	if look == nil {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	origin = g.WorldPosition()
	origin.Y += look.GetEyeHeight()
	x, y, z := look.GetLookDirection()
	return origin, rl.Vector3{X: x, Y: y, Z: z}, true
}

// Interact runs one query and triggers at most one Interactable. It returns
// the triggered object, or nil when nothing interactable was hit.
func (i *Interactor) Interact() *engine.GameObject {
	hit, ok := i.trace()
	if !ok {
		logger.Log.Debug("Interact: no target")
		return nil
	}
	target, owner := engine.FindInteractable(hit.GameObject)
	if target == nil {
		logger.Log.Debug("Interact: not interactable", zap.String("hit", hit.GameObject.Name))
		return nil
	}

	target.OnInteract(i.GetGameObject())
	logger.Log.Debug("Interact",
		zap.String("target", owner.Name), zap.Float32("distance", hit.Distance))
	i.OnInteracted.Invoke(owner)
	return owner
}

// Target is the interactable object currently under the crosshair, if any.
func (i *Interactor) Target() *engine.GameObject {
	g := i.GetGameObject()
	if g == nil {
		return nil
	}
	return i.target.Get(g.Scene)
}

func (i *Interactor) refreshTarget() {
	i.target.Clear()
	hit, ok := i.trace()
	if !ok {
		return
	}
	if _, owner := engine.FindInteractable(hit.GameObject); owner != nil {
		i.target.Set(owner)
	}
}

func (i *Interactor) trace() (engine.RaycastResult, bool) {
	g := i.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return engine.RaycastResult{}, false
	}
	origin, dir, ok := i.ViewPose()
	if !ok {
		return engine.RaycastResult{}, false
	}
	query := engine.NewRaycastQuery(i.Channel, g)
	return g.Scene.World.Raycast(origin, dir, i.MaxRange, query)
}

func findLookProvider(g *engine.GameObject) engine.LookProvider {
	for _, c := range g.Components() {
		if lp, ok := c.(engine.LookProvider); ok {
			return lp
		}
	}
	return nil
}
