// Package router chains viewer sessions with explicit data flow.
//
// Every screen takes the same input type and returns the same result type,
// and a single transition function decides what runs next. The navigation
// stack remembers where the user came from, so going back restores the
// previous input as it was pushed (including any position it carries).
//
//	r := router.New[AlbumInput, *imageviewer.ViewerResult]()
//	r.Register(ScreenAlbum, showAlbum)
//	r.OnTransition(func(from router.Screen, in AlbumInput, res *imageviewer.ViewerResult, stack *router.Stack[AlbumInput]) (router.Screen, AlbumInput) {
//	    if res.Action == imageviewer.ViewerActionTriggered {
//	        in.Index = res.Index
//	        stack.Push(from, in)
//	        return ScreenAlbum, AlbumInput{Album: in.Album + 1}
//	    }
//	    if entry, ok := stack.Pop(); ok {
//	        return entry.Screen, entry.Input
//	    }
//	    return router.ScreenExit, in
//	})
//	err := r.Run(ScreenAlbum, AlbumInput{})
package router

import "fmt"

// Screen identifies a registered screen. Applications define their own
// constants with iota.
type Screen int

// ScreenExit stops Run when returned from a transition.
const ScreenExit Screen = -1

// ScreenFunc runs one screen to completion.
type ScreenFunc[In, Out any] func(input In) (Out, error)

// TransitionFunc picks the next screen after from finished with result.
// input is what from was called with.
type TransitionFunc[In, Out any] func(from Screen, input In, result Out, stack *Stack[In]) (Screen, In)

// Router runs screens until a transition returns ScreenExit.
type Router[In, Out any] struct {
	screens    map[Screen]ScreenFunc[In, Out]
	transition TransitionFunc[In, Out]
	stack      *Stack[In]
}

func New[In, Out any]() *Router[In, Out] {
	return &Router[In, Out]{
		screens: make(map[Screen]ScreenFunc[In, Out]),
		stack:   NewStack[In](),
	}
}

// Register adds or replaces the function run for screen.
func (r *Router[In, Out]) Register(screen Screen, fn ScreenFunc[In, Out]) *Router[In, Out] {
	r.screens[screen] = fn
	return r
}

func (r *Router[In, Out]) OnTransition(fn TransitionFunc[In, Out]) *Router[In, Out] {
	r.transition = fn
	return r
}

// Run starts at screen with input. It returns nil once a transition
// returns ScreenExit, or the first screen error wrapped with its screen.
func (r *Router[In, Out]) Run(screen Screen, input In) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	for screen != ScreenExit {
		fn, ok := r.screens[screen]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", screen)
		}

		result, err := fn(input)
		if err != nil {
			return fmt.Errorf("router: screen %d: %w", screen, err)
		}

		screen, input = r.transition(screen, input, result, r.stack)
	}

	return nil
}

// Stack returns the navigation stack shared with the transition function.
func (r *Router[In, Out]) Stack() *Stack[In] {
	return r.stack
}
