package imageviewer

// ViewerAction is how a viewer session ended.
type ViewerAction int

const (
	ViewerActionDismissed ViewerAction = iota // User closed the viewer (B button, quit)
	ViewerActionPowerOff                      // Power button short press
	ViewerActionTriggered                     // WithNavigationAction handler returned true
)

func (a ViewerAction) String() string {
	switch a {
	case ViewerActionDismissed:
		return "dismissed"
	case ViewerActionPowerOff:
		return "power_off"
	case ViewerActionTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// ViewerResult is returned by ImageViewer when the session ends.
type ViewerResult struct {
	Action  ViewerAction
	Index   int  // Current index at dismissal, -1 for an empty gallery
	Drifted bool // The user ended on a different image than the one opened
}
