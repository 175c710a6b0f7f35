package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/zyedidia/generic/mapset"
)

// Channel is a bitmask of trace channels. A collider blocks a query when
// their masks overlap.
type Channel uint32

const (
	ChannelVisibility Channel = 1 << iota
	ChannelCamera
	ChannelPawn

	ChannelAll Channel = ^Channel(0)
)

// RaycastQuery filters a raycast.
type RaycastQuery struct {
	Channel Channel
	// Ignore holds UIDs of objects the ray passes through, typically the
	// querying object itself.
	Ignore mapset.Set[uint64]
}

// NewRaycastQuery builds a query on channel that ignores the given objects.
func NewRaycastQuery(channel Channel, ignore ...*GameObject) RaycastQuery {
	q := RaycastQuery{Channel: channel, Ignore: mapset.New[uint64]()}
	for _, g := range ignore {
		if g != nil {
			q.Ignore.Put(g.UID)
		}
	}
	return q
}

// Skips reports whether the query passes through g.
func (q *RaycastQuery) Skips(g *GameObject) bool {
	return q.Ignore.Has(g.UID)
}

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	Raycast(origin, direction rl.Vector3, maxDistance float32, query RaycastQuery) (RaycastResult, bool)
}
