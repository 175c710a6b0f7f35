package components

import (
	"fmt"

	"retrofps/internal/engine"
	"retrofps/internal/logger"
	"retrofps/internal/timeline"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DoorState is the door's position in its open/close cycle.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "Closed"
	case DoorOpening:
		return "Opening"
	case DoorOpen:
		return "Open"
	case DoorClosing:
		return "Closing"
	}
	return fmt.Sprintf("DoorState(%d)", int(s))
}

const (
	DefaultDoorOpenAngle = 90
	DefaultDoorDuration  = 1
	DefaultDoorCurve     = "InOutSine"
)

// DoorConfig is the per-instance tuning of a door.
type DoorConfig struct {
	// OpenAngle is the yaw delta in degrees at full open.
	OpenAngle float32
	// Duration of a full swing in seconds.
	Duration float32
	// Curve names a timeline curve. Empty means no animation: the door snaps.
	Curve string
	// Panel names the child that swings. Empty picks the first child, or the
	// door object itself when it has none.
	Panel string
	// SwingAwayFromRequester re-derives the swing side on every open from the
	// requester's facing instead of the panel/frame orientation.
	SwingAwayFromRequester bool
}

func DefaultDoorConfig() DoorConfig {
	return DoorConfig{
		OpenAngle: DefaultDoorOpenAngle,
		Duration:  DefaultDoorDuration,
		Curve:     DefaultDoorCurve,
	}
}

// Door swings a panel open and closed on interact. It lives on the frame
// object; the panel is a child.
type Door struct {
	engine.BaseComponent
	Config DoorConfig

	// OnStateChanged fires on every state transition.
	OnStateChanged engine.EventWithArg[DoorState]

	panel      *engine.GameObject
	initialYaw float32
	sameSide   bool
	isClosed   bool
	state      DoorState
	timeline   *timeline.Timeline
	triggered  bool // a trigger arrived this frame
}

func NewDoor(cfg DoorConfig) *Door {
	return &Door{Config: cfg, isClosed: true}
}

// Start resolves the panel, records its rest orientation and derives the
// swing side from the panel's facing relative to the frame.
func (d *Door) Start() {
	g := d.GetGameObject()
	if g == nil {
		return
	}
	d.isClosed = true
	d.state = DoorClosed

	d.panel = g
	if d.Config.Panel != "" {
		if p := g.FindChild(d.Config.Panel); p != nil {
			d.panel = p
		} else {
			logger.Log.Warn("Door panel not found, swinging the frame",
				zap.String("door", g.Name), zap.String("panel", d.Config.Panel))
		}
	} else if len(g.Children) > 0 {
		d.panel = g.Children[0]
	}
	d.initialYaw = d.panel.Transform.Rotation.Y
	d.sameSide = rl.Vector3DotProduct(d.panel.Forward(), g.Forward()) >= 0

	var curve *timeline.Curve
	if d.Config.Curve != "" {
		c, ok := timeline.CurveByName(d.Config.Curve)
		if ok {
			curve = c
		} else {
			logger.Log.Warn("Door curve unknown, door will snap",
				zap.String("door", g.Name), zap.String("curve", d.Config.Curve))
		}
	} else {
		logger.Log.Warn("Door has no curve, door will snap", zap.String("door", g.Name))
	}
	if curve != nil && d.Config.Duration <= 0 {
		logger.Log.Warn("Door duration not positive, door will snap",
			zap.String("door", g.Name), zap.Float32("duration", d.Config.Duration))
	}
	d.timeline = timeline.New(curve, d.Config.Duration)
}

// OnInteract implements engine.Interactable. Each call flips the target
// state; a call during a swing reverses it from where it is.
func (d *Door) OnInteract(requester *engine.GameObject) {
	if d.timeline == nil {
		return
	}

	if d.isClosed {
		if d.Config.SwingAwayFromRequester && d.state == DoorClosed && requester != nil {
			d.sameSide = rl.Vector3DotProduct(requester.Forward(), d.GetGameObject().Forward()) >= 0
		}
		d.isClosed = false
		d.timeline.Play()
		d.setState(DoorOpening)
	} else {
		d.isClosed = true
		d.timeline.Reverse()
		d.setState(DoorClosing)
	}
	d.triggered = true

	// Snap mode: the timeline is already settled at the target.
	if !d.timeline.IsPlaying() {
		d.settle()
	}
}

// Update advances the swing and writes the panel rotation. The frame a
// trigger arrives only re-applies the current progress; motion starts on the
// next frame.
func (d *Door) Update(deltaTime float32) {
	if d.timeline == nil {
		return
	}
	if d.triggered {
		d.triggered = false
	} else if d.timeline.Advance(deltaTime) {
		d.settle()
	}
	d.OnAnimationTick(d.timeline.Value())
}

// OnAnimationTick rotates the panel to progress in [0,1] of the open angle,
// relative to its rest orientation.
func (d *Door) OnAnimationTick(progress float32) {
	if d.panel == nil {
		return
	}
	d.panel.Transform.Rotation.Y = d.initialYaw + d.swingSign()*d.Config.OpenAngle*progress
}

func (d *Door) settle() {
	if d.isClosed {
		d.setState(DoorClosed)
	} else {
		d.setState(DoorOpen)
	}
}

func (d *Door) setState(s DoorState) {
	if s == d.state {
		return
	}
	d.state = s
	logger.Log.Debug("Door state", zap.String("door", d.GetGameObject().Name), zap.Stringer("state", s))
	d.OnStateChanged.Invoke(s)
}

func (d *Door) swingSign() float32 {
	if d.sameSide {
		return 1
	}
	return -1
}

func (d *Door) State() DoorState { return d.state }

// IsClosed reports the logical target, true while closing.
func (d *Door) IsClosed() bool { return d.isClosed }

// Progress is the sampled animation value: 0 closed, 1 open.
func (d *Door) Progress() float32 {
	if d.timeline == nil {
		return 0
	}
	return d.timeline.Value()
}

// SameSide reports the swing side derived at Start (or at the last open when
// swinging away from the requester).
func (d *Door) SameSide() bool { return d.sameSide }

func (d *Door) Panel() *engine.GameObject { return d.panel }
