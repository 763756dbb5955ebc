package imageviewer

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidIndex indicates the viewer was opened on an index outside a
	// non-empty gallery. Nothing is presented.
	ErrInvalidIndex = paging.ErrInvalidIndex

	// ErrNotInitialized indicates ImageViewer was called before Init.
	ErrNotInitialized = errors.New("imageviewer: Init has not been called")
)

// InfrastructureError represents an SDL level failure (window creation,
// renderer, texture upload) as opposed to a problem with the caller's input.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("imageviewer: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("imageviewer: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsInvalidIndex checks if an error reports an out of range initial index.
func IsInvalidIndex(err error) bool {
	return errors.Is(err, ErrInvalidIndex)
}
