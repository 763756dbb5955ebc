package paging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex indicates an index outside [0, Count()) of a non-empty gallery.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrEmptyGallery indicates a commit was attempted on a controller with no pages.
	ErrEmptyGallery = errors.New("gallery has no images")

	// ErrStaleSwipe indicates a swipe started from a page that is no longer current.
	ErrStaleSwipe = errors.New("swipe no longer matches current page")
)

// IndexError carries the offending index and the gallery size.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("paging: index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
