// Package timeline drives time-based animation: a Timeline advances a
// playback position each frame and samples a normalized easing Curve.
package timeline

import (
	"slices"

	"github.com/tanema/gween/ease"
)

// Curve maps normalized time in [0,1] to a value, 0 at the start and 1 at the
// end for every curve registered here. Only curves that stay inside [0,1]
// are registered: a door panel must never swing past its open angle.
type Curve struct {
	Name string
	fn   ease.TweenFunc
}

// Eval samples the curve at normalized time t, clamped to [0,1].
func (c *Curve) Eval(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return c.fn(t, 0, 1, 1)
}

var curves = map[string]ease.TweenFunc{
	"Linear":     ease.Linear,
	"InQuad":     ease.InQuad,
	"OutQuad":    ease.OutQuad,
	"InOutQuad":  ease.InOutQuad,
	"InCubic":    ease.InCubic,
	"OutCubic":   ease.OutCubic,
	"InOutCubic": ease.InOutCubic,
	"InSine":     ease.InSine,
	"OutSine":    ease.OutSine,
	"InOutSine":  ease.InOutSine,
	"OutBounce":  ease.OutBounce,
}

// CurveByName looks up a named easing curve.
func CurveByName(name string) (*Curve, bool) {
	fn, ok := curves[name]
	if !ok {
		return nil, false
	}
	return &Curve{Name: name, fn: fn}, true
}

// CurveNames lists the known curve names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
