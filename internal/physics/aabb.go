package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// IntersectRay runs the slab test. direction must be normalized so the
// returned distance is in world units. A hit at exactly maxDistance counts.
// When the origin is inside the box the exit point is reported.
func (a AABB) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z) {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case absf(point.X-a.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-a.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-a.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-a.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-a.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}
