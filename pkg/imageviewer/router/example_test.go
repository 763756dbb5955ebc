package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/router"
)

const ScreenAlbum router.Screen = iota

type AlbumInput struct {
	Album int
	Index int
}

type AlbumResult struct {
	Next  bool // user asked for the next album
	Index int  // where the user stopped
}

// Example walks forward through two albums and back again, resuming the
// first album where it was left.
func Example() {
	script := []AlbumResult{
		{Next: true, Index: 3},
		{Next: false, Index: 0},
		{Next: false, Index: 3},
	}

	r := router.New[AlbumInput, AlbumResult]()
	r.Register(ScreenAlbum, func(in AlbumInput) (AlbumResult, error) {
		fmt.Printf("album %d at %d\n", in.Album, in.Index)
		res := script[0]
		script = script[1:]
		return res, nil
	})
	r.OnTransition(func(from router.Screen, in AlbumInput, res AlbumResult, stack *router.Stack[AlbumInput]) (router.Screen, AlbumInput) {
		if res.Next {
			in.Index = res.Index
			stack.Push(from, in)
			return ScreenAlbum, AlbumInput{Album: in.Album + 1}
		}
		if entry, ok := stack.Pop(); ok {
			return entry.Screen, entry.Input
		}
		return router.ScreenExit, in
	})

	if err := r.Run(ScreenAlbum, AlbumInput{}); err != nil {
		fmt.Println(err)
	}

	// Output:
	// album 0 at 0
	// album 1 at 0
	// album 0 at 3
}
