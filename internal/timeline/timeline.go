package timeline

import "math"

// Bounds of a sampled value while the head is strictly between the ends.
var (
	interiorMin = math.Nextafter32(0, 1)
	interiorMax = math.Nextafter32(1, 0)
)

// Timeline is a playback head over a fixed length, sampled through a Curve.
// It never runs on its own: the owner calls Advance once per frame.
//
// A Timeline without a curve, or with a non-positive length, cannot animate:
// Play and Reverse jump straight to the end they head for.
type Timeline struct {
	curve     *Curve
	length    float32
	position  float32
	playing   bool
	reversing bool
}

// New creates a stopped timeline at position 0.
func New(curve *Curve, length float32) *Timeline {
	return &Timeline{curve: curve, length: length}
}

// CanAnimate reports whether the timeline has a curve and a positive length.
func (t *Timeline) CanAnimate() bool {
	return t.curve != nil && t.length > 0
}

// Play runs forward from the current position.
func (t *Timeline) Play() {
	t.reversing = false
	if !t.CanAnimate() {
		t.position = t.span()
		t.playing = false
		return
	}
	t.playing = t.position < t.length
}

// Reverse runs backward from the current position.
func (t *Timeline) Reverse() {
	t.reversing = true
	if !t.CanAnimate() {
		t.position = 0
		t.playing = false
		return
	}
	t.playing = t.position > 0
}

// Advance moves the playback head by dt seconds in the current direction.
// It returns true when this call reached an end and stopped playback.
func (t *Timeline) Advance(dt float32) bool {
	if !t.playing || dt <= 0 {
		return false
	}
	if t.reversing {
		t.position -= dt
		if t.position <= 0 {
			t.position = 0
			t.playing = false
			return true
		}
		return false
	}
	t.position += dt
	if t.position >= t.length {
		t.position = t.length
		t.playing = false
		return true
	}
	return false
}

// Progress is the normalized playback position in [0,1].
func (t *Timeline) Progress() float32 {
	p := t.position / t.span()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// span is the length used for position math; a snapping timeline with no
// length still needs distinct start and end positions.
func (t *Timeline) span() float32 {
	if t.length > 0 {
		return t.length
	}
	return 1
}

// SetProgress moves the playback head to normalized position p without
// changing the playing state.
func (t *Timeline) SetProgress(p float32) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	t.position = p * t.span()
}

// Value samples the curve at the current position. It is exactly 0 at the
// start and exactly 1 at the end, and strictly between the two anywhere else,
// even where a curve touches an end mid-way (OutBounce).
func (t *Timeline) Value() float32 {
	p := t.Progress()
	if t.curve == nil || p <= 0 || p >= 1 {
		return p
	}
	return min(max(t.curve.Eval(p), interiorMin), interiorMax)
}

func (t *Timeline) IsPlaying() bool   { return t.playing }
func (t *Timeline) IsReversing() bool { return t.reversing }
