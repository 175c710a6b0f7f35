// Package input maps raw key and mouse state to semantic gameplay actions.
package input

import "fmt"

// Action is a semantic gameplay action.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveRight
	ActionMoveLeft
	ActionSprint
	ActionJump
	ActionInteract
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionMoveRight:    "move_right",
	ActionMoveLeft:     "move_left",
	ActionSprint:       "sprint",
	ActionJump:         "jump",
	ActionInteract:     "interact",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a config name such as "move_forward".
func ParseAction(name string) (Action, error) {
	for a := ActionMoveForward; a < ActionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Source is raw device state for the current frame.
type Source interface {
	IsKeyDown(key int32) bool
	MouseDelta() (dx, dy float32)
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]int32

// Mapper polls a Source once per frame and answers action queries for that
// frame. Pressed and Released are edges: they hold for exactly one Poll.
type Mapper struct {
	bindings        Bindings
	LookSensitivity float32
	InvertY         bool

	down     [ActionCount]bool
	prevDown [ActionCount]bool
	lookX    float32
	lookY    float32
}

func NewMapper(bindings Bindings) *Mapper {
	return &Mapper{bindings: bindings, LookSensitivity: 1}
}

// Poll samples src and advances edge state by one frame.
func (m *Mapper) Poll(src Source) {
	m.prevDown = m.down
	for a := range m.down {
		m.down[a] = false
		for _, key := range m.bindings[Action(a)] {
			if src.IsKeyDown(key) {
				m.down[a] = true
				break
			}
		}
	}

	dx, dy := src.MouseDelta()
	m.lookX = dx * m.LookSensitivity
	m.lookY = dy * m.LookSensitivity
	if m.InvertY {
		m.lookY = -m.lookY
	}
}

func (m *Mapper) Down(a Action) bool {
	return m.down[a]
}

func (m *Mapper) Pressed(a Action) bool {
	return m.down[a] && !m.prevDown[a]
}

func (m *Mapper) Released(a Action) bool {
	return !m.down[a] && m.prevDown[a]
}

// MoveAxis returns (right, forward) in [-1,1], opposite keys cancelling.
func (m *Mapper) MoveAxis() (x, y float32) {
	if m.down[ActionMoveRight] {
		x++
	}
	if m.down[ActionMoveLeft] {
		x--
	}
	if m.down[ActionMoveForward] {
		y++
	}
	if m.down[ActionMoveBackward] {
		y--
	}
	return x, y
}

// LookAxis returns this frame's scaled mouse delta.
func (m *Mapper) LookAxis() (x, y float32) {
	return m.lookX, m.lookY
}
