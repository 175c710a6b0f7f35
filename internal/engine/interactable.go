package engine

// Interactable is the capability a world object exposes to respond to a
// player's interact action. Interaction queries depend only on this interface,
// never on a concrete type.
type Interactable interface {
	// OnInteract is called once per interact press. requester is the object
	// that issued the query and is only valid for the duration of the call.
	OnInteract(requester *GameObject)
}

// FindInteractable returns the first Interactable component on g or on any of
// its ancestors. Colliders usually sit on a child (a door panel) while the
// behaviour lives on the parent.
func FindInteractable(g *GameObject) (Interactable, *GameObject) {
	for cur := g; cur != nil; cur = cur.Parent {
		for _, c := range cur.components {
			if i, ok := c.(Interactable); ok {
				return i, cur
			}
		}
	}
	return nil, nil
}
