package paging

import "weak"

// AnchorState describes the current page relative to the initial page.
type AnchorState int

const (
	// Anchored means the current page is the one the viewer opened on.
	Anchored AnchorState = iota
	// Drifted means the user has navigated away from the opening page.
	Drifted
	// Detached means there is no current page at all (empty gallery).
	Detached
)

func (s AnchorState) String() string {
	switch s {
	case Anchored:
		return "anchored"
	case Drifted:
		return "drifted"
	case Detached:
		return "detached"
	default:
		return "unknown"
	}
}

// Anchor is a non-owning reference to a view. It never keeps the view alive;
// Value returns nil once the owner has let go of it.
type Anchor[V any] struct {
	ptr weak.Pointer[V]
}

// WeakAnchor creates an Anchor for v. A nil v gives an anchor that is always gone.
func WeakAnchor[V any](v *V) Anchor[V] {
	return Anchor[V]{ptr: weak.Make(v)}
}

// Value returns the referenced view, or nil if it was never set or has been collected.
func (a Anchor[V]) Value() *V {
	return a.ptr.Value()
}

// ViewLookup returns the content view of the current page, or nil when the
// page has not attached to the display yet.
type ViewLookup[V any] func() *V

// Resolver computes the anchor views of the open and close transitions from
// a Controller's state. It keeps no history: every call compares the
// controller's current and initial index afresh.
type Resolver[V any] struct {
	controller *Controller
	opening    Anchor[V]
	current    ViewLookup[V]
}

// NewResolver creates a resolver over c. opening is the view the viewer was
// launched from and is referenced weakly. current may be nil, in which case
// Target always reports nil.
func NewResolver[V any](c *Controller, opening *V, current ViewLookup[V]) *Resolver[V] {
	return &Resolver[V]{
		controller: c,
		opening:    WeakAnchor(opening),
		current:    current,
	}
}

// State returns Anchored while the current page is the initial page.
func (r *Resolver[V]) State() AnchorState {
	if r.controller == nil || r.controller.Empty() {
		return Detached
	}
	if r.controller.CurrentIndex() != r.controller.InitialIndex() {
		return Drifted
	}
	return Anchored
}

// Source returns the opening anchor view while Anchored, otherwise nil.
func (r *Resolver[V]) Source() *V {
	if r.State() != Anchored {
		return nil
	}
	return r.opening.Value()
}

// Target returns the content view of the current page, or nil when it is not attached.
func (r *Resolver[V]) Target() *V {
	if r.current == nil || r.controller == nil || r.controller.Empty() {
		return nil
	}
	return r.current()
}

// Transition resolves both anchors for an animation in direction d.
func (r *Resolver[V]) Transition(d Direction) Transition[V] {
	return Transition[V]{
		Source:    r.Source(),
		Target:    r.Target(),
		Direction: d,
	}
}
