// Package paging provides the navigation core of the image viewer: a lazily
// populated page sequence over a Gallery and the resolution of the views that
// anchor the open and close transitions.
//
// Nothing in this package touches SDL, the filesystem or goroutines. A host
// drives it from its render loop.
//
// # Page sequence
//
// A Controller holds exactly one current page. Neighbours are materialised
// only when asked for, and never become current until the host commits them:
//
//	c, err := paging.NewController(gallery, 2)
//	if err != nil {
//	    return err // errors.Is(err, paging.ErrInvalidIndex)
//	}
//
//	if next, ok := c.PageAfter(c.CurrentIndex()); ok {
//	    // the swipe crossed the midpoint
//	    _ = c.Commit(next)
//	}
//
// Neighbour requests are computed from the index passed in, not from the
// controller's state, so results for a stale index are still well defined.
// Discarding them is up to the caller; Swipe does that bookkeeping.
//
// # Transition anchors
//
// A Resolver answers which view the open/close animation should start from
// and land on:
//
//	r := paging.NewResolver(c, thumbnail, func() *View { return current.ContentView() })
//	t := r.Transition(paging.Close)
//	if !t.Geometric() {
//	    // fade instead of zoom
//	}
//
// The opening anchor is held through a weak pointer. Once the current page
// differs from the initial one the resolver reports Drifted and Source
// returns nil; navigating back to the initial page restores it, since the
// state is recomputed on every call.
package paging
