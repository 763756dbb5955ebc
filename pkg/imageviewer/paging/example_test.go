package paging_test

import (
	"fmt"
	"runtime"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
)

type thumbnail struct {
	Name string
	X, Y int32
}

// Example walks a five image gallery away from the opening page and back.
func Example() {
	gallery := paging.SliceGallery{
		{Locator: "a.png"}, {Locator: "b.png"}, {Locator: "c.png"}, {Locator: "d.png"}, {Locator: "e.png"},
	}

	c, err := paging.NewController(gallery, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	thumb := &thumbnail{Name: "c-thumb"}
	r := paging.NewResolver[thumbnail](c, thumb, nil)

	before, _ := c.PageBefore(c.CurrentIndex())
	_ = c.Commit(before)
	fmt.Printf("current=%d state=%s source=%v\n", c.CurrentIndex(), r.State(), r.Source() != nil)

	after, _ := c.PageAfter(c.CurrentIndex())
	_ = c.Commit(after)
	fmt.Printf("current=%d state=%s source=%s\n", c.CurrentIndex(), r.State(), r.Source().Name)

	runtime.KeepAlive(thumb)

	// Output:
	// current=1 state=drifted source=false
	// current=2 state=anchored source=c-thumb
}

// ExampleSwipe shows a gesture that is released before the midpoint.
func ExampleSwipe() {
	c, _ := paging.NewController(paging.SliceGallery{{Locator: "a.png"}, {Locator: "b.png"}}, 0)

	s, ok := paging.BeginSwipe(c, paging.SwipeForward, paging.DefaultSwipeThreshold)
	fmt.Println("can swipe:", ok, "candidate:", s.Candidate().Index)

	s.Update(0.4)
	committed, _ := s.Finish(c)
	fmt.Println("committed:", committed, "current:", c.CurrentIndex())

	s.Update(0.8)
	committed, _ = s.Finish(c)
	fmt.Println("committed:", committed, "current:", c.CurrentIndex())

	// Output:
	// can swipe: true candidate: 1
	// committed: false current: 0
	// committed: true current: 1
}

// ExampleNewController shows the error for an out of range opening index.
func ExampleNewController() {
	_, err := paging.NewController(paging.SliceGallery{{Locator: "a.png"}}, 3)
	fmt.Println(err)

	empty, err := paging.NewController(paging.SliceGallery{}, 0)
	fmt.Println(err, empty.Empty())

	// Output:
	// paging: index 3 out of range [0, 1)
	// <nil> true
}
