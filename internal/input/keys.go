package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyByName = map[string]int32{
	"A": rl.KeyA, "B": rl.KeyB, "C": rl.KeyC, "D": rl.KeyD, "E": rl.KeyE,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "I": rl.KeyI, "J": rl.KeyJ,
	"K": rl.KeyK, "L": rl.KeyL, "M": rl.KeyM, "N": rl.KeyN, "O": rl.KeyO,
	"P": rl.KeyP, "Q": rl.KeyQ, "R": rl.KeyR, "S": rl.KeyS, "T": rl.KeyT,
	"U": rl.KeyU, "V": rl.KeyV, "W": rl.KeyW, "X": rl.KeyX, "Y": rl.KeyY,
	"Z": rl.KeyZ,

	"Space":        rl.KeySpace,
	"Enter":        rl.KeyEnter,
	"Tab":          rl.KeyTab,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
}

// ParseKey resolves a key name such as "W" or "LeftShift". Single letters
// are case-insensitive.
func ParseKey(name string) (int32, error) {
	if len(name) == 1 {
		name = strings.ToUpper(name)
	}
	key, ok := keyByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return key, nil
}

// ParseBindings converts config bindings (action name -> key names).
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := make(Bindings, len(raw))
	for actionName, keyNames := range raw {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		for _, kn := range keyNames {
			key, err := ParseKey(kn)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", actionName, err)
			}
			b[action] = append(b[action], key)
		}
	}
	return b, nil
}

// DefaultBindings is WASD movement, shift sprint, space jump, E interact.
func DefaultBindings() Bindings {
	return Bindings{
		ActionMoveForward:  {rl.KeyW, rl.KeyUp},
		ActionMoveBackward: {rl.KeyS, rl.KeyDown},
		ActionMoveRight:    {rl.KeyD, rl.KeyRight},
		ActionMoveLeft:     {rl.KeyA, rl.KeyLeft},
		ActionSprint:       {rl.KeyLeftShift},
		ActionJump:         {rl.KeySpace},
		ActionInteract:     {rl.KeyE},
	}
}

// RaylibSource reads the live keyboard and mouse.
type RaylibSource struct{}

func (RaylibSource) IsKeyDown(key int32) bool {
	return rl.IsKeyDown(key)
}

func (RaylibSource) MouseDelta() (dx, dy float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}
