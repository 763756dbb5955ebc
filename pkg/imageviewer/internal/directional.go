package internal

import (
	"time"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
)

// Direction is a horizontal paging direction from the d-pad or keyboard.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks the held paging direction and decides when a held
// button should page again.
type DirectionalInput struct {
	held struct {
		left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with the given timing.
// The first repeat fires after delay, later ones every interval.
func NewDirectionalInput(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a virtual button.
// Returns true if the button is a paging direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		d.held.left = held
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		d.held.right = held
	default:
		return false
	}

	if held {
		d.lastRepeatTime = time.Now()
	}
	d.hasRepeated = false
	return true
}

// HeldDirection returns the held direction, preferring left.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.left {
		return DirectionLeft
	}
	if d.held.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update returns the direction to page in this frame, or DirectionNone.
// Call once per frame.
func (d *DirectionalInput) Update() Direction {
	dir := d.HeldDirection()
	if dir == DirectionNone {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return dir
	}

	return DirectionNone
}

// Reset clears held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
