package paging

// Direction is the direction of a presentation transition.
type Direction int

const (
	Open Direction = iota
	Close
)

func (d Direction) String() string {
	switch d {
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Transition is a resolved pair of anchors for one open or close animation.
// Either view may be nil.
type Transition[V any] struct {
	Source    *V
	Target    *V
	Direction Direction
}

// Geometric reports whether both anchors are present, so the animation can
// morph one rectangle into the other. Otherwise the animator must fall back
// to a plain fade.
func (t Transition[V]) Geometric() bool {
	return t.Source != nil && t.Target != nil
}

// Animator performs presentation transitions. The paging core supplies
// resolved anchors but never animates anything itself.
type Animator[V any] interface {
	Animate(t Transition[V])
}

// RenderedPage is a page that has been handed to the rendering collaborator.
// ContentView returns nil until the page has attached to the display.
type RenderedPage[V any] interface {
	Page() Page
	ContentView() *V
}

// Renderer turns pages into rendered pages.
type Renderer[V any] interface {
	Render(page Page) RenderedPage[V]
}

// Present resolves the anchors for direction d and hands them to a.
// It returns the transition that was animated.
func Present[V any](r *Resolver[V], a Animator[V], d Direction) Transition[V] {
	t := r.Transition(d)
	if a != nil {
		a.Animate(t)
	}
	return t
}
