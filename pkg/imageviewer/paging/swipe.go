package paging

// DefaultSwipeThreshold is the fraction of a page width a swipe must cover
// before releasing it commits the neighbour.
const DefaultSwipeThreshold = 0.5

// SwipeDirection is the direction a swipe travels through the gallery.
type SwipeDirection int

const (
	SwipeBackward SwipeDirection = iota // Towards the previous image
	SwipeForward                        // Towards the next image
)

func (d SwipeDirection) String() string {
	if d == SwipeBackward {
		return "backward"
	}
	return "forward"
}

// Swipe tracks one in-flight navigation gesture. The candidate page is held
// only by the Swipe; cancelling it leaves the controller untouched.
type Swipe struct {
	from      int
	direction SwipeDirection
	candidate Page
	progress  float64
	threshold float64
}

// BeginSwipe starts a swipe from the controller's current page.
// It reports false when there is no neighbour in that direction.
// A threshold outside (0, 1) falls back to DefaultSwipeThreshold.
func BeginSwipe(c *Controller, direction SwipeDirection, threshold float64) (*Swipe, bool) {
	from := c.CurrentIndex()

	var (
		candidate Page
		ok        bool
	)
	if direction == SwipeBackward {
		candidate, ok = c.PageBefore(from)
	} else {
		candidate, ok = c.PageAfter(from)
	}
	if !ok {
		return nil, false
	}

	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultSwipeThreshold
	}

	return &Swipe{
		from:      from,
		direction: direction,
		candidate: candidate,
		threshold: threshold,
	}, true
}

// From returns the index that was current when the swipe began.
func (s *Swipe) From() int {
	return s.from
}

// Direction returns the direction of travel.
func (s *Swipe) Direction() SwipeDirection {
	return s.direction
}

// Candidate returns the neighbour page the swipe would land on.
func (s *Swipe) Candidate() Page {
	return s.candidate
}

// Update sets how far the gesture has travelled, as a fraction of the page
// width. Values are clamped to [0, 1].
func (s *Swipe) Update(progress float64) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	s.progress = progress
}

// Progress returns the last value passed to Update.
func (s *Swipe) Progress() float64 {
	return s.progress
}

// PastMidpoint reports whether releasing now would commit the candidate.
func (s *Swipe) PastMidpoint() bool {
	return s.progress > s.threshold
}

// Finish ends the gesture. Past the midpoint the candidate is committed and
// Finish returns true. Before the midpoint nothing happens. If the controller
// has moved on since the swipe began, the candidate is discarded and
// ErrStaleSwipe is returned.
func (s *Swipe) Finish(c *Controller) (bool, error) {
	if !s.PastMidpoint() {
		return false, nil
	}
	if c.CurrentIndex() != s.from {
		return false, ErrStaleSwipe
	}
	if err := c.Commit(s.candidate); err != nil {
		return false, err
	}
	return true, nil
}
