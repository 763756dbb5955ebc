// Package constants defines shared constants, types, and configuration values
// used throughout the image viewer.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables recognised by the viewer.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"   // DEV runs windowed
	WindowWidthEnvVar  = "WINDOW_WIDTH"  // Window width in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT" // Window height in dev mode
	FlipButtonsEnvVar  = "FLIP_FACE_BUTTONS"
	LogLevelEnvVar     = "LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unassigned"
	}
}

// Viewer layout and timing defaults.
const (
	InterPageSpacing          int32 = 20                     // Gap between adjacent pages while swiping
	NavigationBarHeight       int32 = 44                     // Height of the navigation bar
	FooterHeight              int32 = 30                     // Height of the hint footer
	DefaultInputDelay               = 20 * time.Millisecond  // Debounce delay between input events
	DefaultTransitionDuration       = 250 * time.Millisecond // Open/close animation length
	DefaultSettleDuration           = 180 * time.Millisecond // Time for a released swipe to settle
	FrameInterval                   = 16 * time.Millisecond  // ~60fps
)
