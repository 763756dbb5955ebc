package imageviewer

import (
	"time"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/geometry"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/internal/locale"
	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/paging"
	"github.com/veandco/go-sdl2/sdl"
)

// How long the open transition waits for the first image before falling
// back to a fade.
const attachTimeout = 300 * time.Millisecond

type viewerState struct {
	window     *internal.Window
	renderer   *sdl.Renderer
	cfg        viewerConfig
	controller *paging.Controller
	resolver   *paging.Resolver[View]
	animator   *zoomAnimator
	pages      *pageRenderer
	localizer  *locale.Localizer
	chrome     *chrome

	current   *pageView
	swipe     *paging.Swipe
	neighbour *pageView
	settle    *settleAnimation
	drag      dragState

	directional   internal.DirectionalInput
	lastInputTime time.Time
	inputDelay    time.Duration
	lastState     paging.AnchorState

	result   ViewerResult
	finished bool
}

type dragState struct {
	active   bool
	startX   int32
	dx       int32
	atBorder bool
}

// noteBoundary reports whether running into the first or last image should
// be logged. A drag logs it once; button presses log every time.
func (d *dragState) noteBoundary() bool {
	if !d.active {
		return true
	}
	if d.atBorder {
		return false
	}
	d.atBorder = true
	return true
}

type settleAnimation struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

func (s *settleAnimation) progress() (float64, bool) {
	if s.duration <= 0 {
		return s.to, true
	}
	t := float64(time.Since(s.start)) / float64(s.duration)
	if t >= 1 {
		return s.to, true
	}
	return s.from + (s.to-s.from)*geometry.EaseInOut(t), false
}

// ImageViewer presents gallery full-screen starting at initialIndex and
// blocks until the user dismisses it.
//
// source is the view the viewer is launched from; it is referenced weakly
// and may be nil. The open transition zooms out of it, and the close
// transition zooms back into it only if the user is on initialIndex again;
// otherwise both fade.
//
// An initialIndex outside a non-empty gallery returns ErrInvalidIndex
// without presenting anything. An empty gallery is shown as an empty state.
func ImageViewer(gallery paging.Gallery, source *View, initialIndex int, options ...ViewerOption) (*ViewerResult, error) {
	controller, err := paging.NewController(gallery, initialIndex)
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrNotInitialized
	}

	cfg := newViewerConfig(defaultSettings, options)

	state, err := newViewerState(controller, source, cfg)
	if err != nil {
		return nil, err
	}
	defer state.cleanup()

	for _, fn := range cfg.initialized {
		fn()
	}

	state.waitForAttach(attachTimeout)
	paging.Present[View](state.resolver, state.animator, paging.Open)

	for !state.finished {
		state.handleEvents()
		state.update()
		state.render()
	}

	state.settleNow()
	paging.Present[View](state.resolver, state.animator, paging.Close)

	state.result.Index = controller.CurrentIndex()
	state.result.Drifted = state.resolver.State() == paging.Drifted
	return &state.result, nil
}

func newViewerState(controller *paging.Controller, source *View, cfg viewerConfig) (*viewerState, error) {
	window := internal.GetWindow()

	localizer, err := locale.New(cfg.language)
	if err != nil {
		return nil, NewInfrastructureError("load translations", err)
	}

	s := &viewerState{
		window:        window,
		renderer:      window.Renderer,
		cfg:           cfg,
		controller:    controller,
		pages:         newPageRenderer(window.Bounds(), cfg.contentMode, cfg.cacheSize),
		localizer:     localizer,
		directional:   internal.NewDirectionalInput(cfg.repeatDelay, cfg.repeatInterval),
		lastInputTime: time.Now(),
		inputDelay:    constants.DefaultInputDelay,
		result:        ViewerResult{Action: ViewerActionDismissed},
	}
	s.chrome = newChrome(window.Renderer, cfg, localizer)
	s.animator = &zoomAnimator{window: window, theme: cfg.theme, duration: cfg.transitionDuration}
	s.resolver = paging.NewResolver(controller, source, s.currentView)
	s.lastState = s.resolver.State()

	if page, ok := controller.Current(); ok {
		s.current = s.pages.view(page)
		s.preloadNeighbours()
	}

	internal.GetInternalLogger().Debug("Viewer opened",
		"count", controller.Count(),
		"initial_index", controller.InitialIndex(),
		"has_source", source != nil)

	return s, nil
}

func (s *viewerState) currentView() *View {
	if s.current == nil {
		return nil
	}
	return s.current.ContentView()
}

// waitForAttach gives the current image a moment to load so the open
// transition has a target to zoom into.
func (s *viewerState) waitForAttach(timeout time.Duration) {
	if s.current == nil || s.cfg.transitionDuration <= 0 {
		return
	}
	deadline := time.Now().Add(timeout)
	for s.currentView() == nil && s.pages.pending() && time.Now().Before(deadline) {
		s.pages.poll(s.renderer)
		sdl.Delay(uint32(constants.FrameInterval / time.Millisecond))
	}
}

func (s *viewerState) preloadNeighbours() {
	index := s.controller.CurrentIndex()
	keep := []int{index}

	if before, ok := s.controller.PageBefore(index); ok {
		s.pages.Render(before)
		keep = append(keep, before.Index)
	}
	if after, ok := s.controller.PageAfter(index); ok {
		s.pages.Render(after)
		keep = append(keep, after.Index)
	}
	s.pages.keep(keep...)
}

func (s *viewerState) handleEvents() {
	processor := internal.GetInputProcessor()

	if internal.ConsumePowerPress() {
		s.finish(ViewerActionPowerOff)
		return
	}

	event := sdl.WaitEventTimeout(int(constants.FrameInterval / time.Millisecond))
	for ; event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			s.finish(ViewerActionDismissed)
			return

		case *sdl.MouseButtonEvent:
			if ev.Button == sdl.BUTTON_LEFT {
				s.handlePointer(ev.X, ev.State == sdl.PRESSED)
			}

		case *sdl.MouseMotionEvent:
			if s.drag.active {
				s.handleDrag(ev.X)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || inputEvent.Repeat {
				continue
			}
			s.directional.SetHeld(inputEvent.Button, inputEvent.Pressed)
			if inputEvent.Pressed {
				s.handleButton(inputEvent.Button)
			}
		}
		if s.finished {
			return
		}
	}
}

func (s *viewerState) handleButton(button constants.VirtualButton) {
	if time.Since(s.lastInputTime) < s.inputDelay {
		return
	}
	s.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		s.navigate(paging.SwipeBackward)
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		s.navigate(paging.SwipeForward)
	case constants.VirtualButtonB:
		s.finish(ViewerActionDismissed)
	case constants.VirtualButtonX:
		s.triggerAction()
	}
}

func (s *viewerState) triggerAction() {
	if s.cfg.action == nil || s.controller.Empty() {
		return
	}
	if s.cfg.action(s.controller.CurrentIndex()) {
		s.finish(ViewerActionTriggered)
	}
}

func (s *viewerState) finish(action ViewerAction) {
	s.result.Action = action
	s.finished = true
}

// navigate starts a button driven page turn that runs to completion.
func (s *viewerState) navigate(direction paging.SwipeDirection) {
	if s.swipe != nil || s.drag.active {
		return
	}
	if !s.beginSwipe(direction) {
		return
	}
	s.settleTo(1)
}

func (s *viewerState) beginSwipe(direction paging.SwipeDirection) bool {
	swipe, ok := paging.BeginSwipe(s.controller, direction, s.cfg.swipeThreshold)
	if !ok {
		if s.drag.noteBoundary() {
			internal.GetInternalLogger().Debug("No page in direction", "direction", direction.String(), "index", s.controller.CurrentIndex())
		}
		return false
	}
	s.swipe = swipe
	s.neighbour = s.pages.view(swipe.Candidate())
	return true
}

func (s *viewerState) handlePointer(x int32, pressed bool) {
	if pressed {
		if s.swipe != nil {
			return
		}
		s.drag = dragState{active: true, startX: x}
		return
	}

	if !s.drag.active {
		return
	}
	s.drag.active = false
	if s.swipe == nil {
		return
	}
	if s.swipe.PastMidpoint() {
		s.settleTo(1)
	} else {
		s.settleTo(0)
	}
}

// handleDrag follows the pointer. Dragging right reveals the previous page.
func (s *viewerState) handleDrag(x int32) {
	s.drag.dx = x - s.drag.startX

	var direction paging.SwipeDirection
	switch {
	case s.drag.dx > 0:
		direction = paging.SwipeBackward
	case s.drag.dx < 0:
		direction = paging.SwipeForward
	default:
		s.cancelSwipe()
		return
	}

	if s.swipe != nil && s.swipe.Direction() != direction {
		s.cancelSwipe()
	}
	if s.swipe == nil && !s.beginSwipe(direction) {
		return
	}

	distance := s.drag.dx
	if distance < 0 {
		distance = -distance
	}
	s.swipe.Update(float64(distance) / float64(s.pageStride()))
}

// settleTo animates the in-flight swipe to target, scaling the duration by
// the distance left to cover.
func (s *viewerState) settleTo(target float64) {
	from := s.swipe.Progress()
	remaining := target - from
	if remaining < 0 {
		remaining = -remaining
	}
	s.settle = &settleAnimation{
		from:     from,
		to:       target,
		start:    time.Now(),
		duration: time.Duration(float64(constants.DefaultSettleDuration) * remaining),
	}
}

// settleNow completes any in-flight swipe before the close transition so the
// final index reflects what is on screen.
func (s *viewerState) settleNow() {
	if s.settle != nil {
		s.swipe.Update(s.settle.to)
		s.completeSwipe()
		return
	}
	s.cancelSwipe()
}

func (s *viewerState) cancelSwipe() {
	if s.swipe != nil {
		internal.GetInternalLogger().Debug("Swipe cancelled", "from", s.swipe.From(), "candidate", s.swipe.Candidate().Index)
	}
	s.swipe = nil
	s.neighbour = nil
	s.settle = nil
}

func (s *viewerState) completeSwipe() {
	committed, err := s.swipe.Finish(s.controller)
	if err != nil {
		internal.GetInternalLogger().Warn("Discarded swipe", "from", s.swipe.From(), "error", err)
	}

	if committed {
		s.current = s.neighbour
		internal.GetInternalLogger().Debug("Page committed", "index", s.controller.CurrentIndex())
		s.preloadNeighbours()
		s.logAnchorState()
	} else if err == nil {
		internal.GetInternalLogger().Debug("Swipe released before midpoint", "from", s.swipe.From())
	}

	s.swipe = nil
	s.neighbour = nil
	s.settle = nil
}

func (s *viewerState) logAnchorState() {
	state := s.resolver.State()
	if state != s.lastState {
		internal.GetInternalLogger().Debug("Anchor state changed", "from", s.lastState.String(), "to", state.String())
		s.lastState = state
	}
}

func (s *viewerState) update() {
	s.pages.poll(s.renderer)

	if s.settle != nil {
		progress, done := s.settle.progress()
		s.swipe.Update(progress)
		if done {
			s.completeSwipe()
		}
		return
	}

	if s.swipe == nil && !s.drag.active {
		switch s.directional.Update() {
		case internal.DirectionLeft:
			s.navigate(paging.SwipeBackward)
		case internal.DirectionRight:
			s.navigate(paging.SwipeForward)
		}
	}
}

func (s *viewerState) pageStride() int32 {
	return s.window.GetWidth() + constants.InterPageSpacing
}

// pageOffsets returns the horizontal offsets of the current and neighbour
// page for the in-flight swipe.
func (s *viewerState) pageOffsets() (int32, int32) {
	if s.swipe == nil {
		return 0, 0
	}
	stride := s.pageStride()
	shift := int32(s.swipe.Progress() * float64(stride))
	if s.swipe.Direction() == paging.SwipeForward {
		return -shift, stride - shift
	}
	return shift, shift - stride
}

func (s *viewerState) render() {
	bg := s.cfg.theme.BackgroundColor
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	s.renderer.Clear()

	if s.controller.Empty() {
		s.chrome.renderMessage(s.window.Bounds(), s.localizer.Text(locale.EmptyGallery))
	} else {
		currentOffset, neighbourOffset := s.pageOffsets()
		s.renderPage(s.current, currentOffset)
		if s.neighbour != nil {
			s.renderPage(s.neighbour, neighbourOffset)
		}
	}

	s.chrome.renderNavigationBar(s.window.GetWidth(), s.controller, s.current)
	s.chrome.renderFooter(s.window.GetWidth(), s.window.GetHeight(), s.cfg.action != nil)

	s.window.Present()
}

func (s *viewerState) renderPage(pv *pageView, offset int32) {
	if pv == nil {
		return
	}

	bounds := s.window.Bounds().Offset(offset, 0)
	view := pv.ContentView()
	if view != nil && view.Texture != nil {
		s.renderer.Copy(view.Texture, nil, toSDLRect(view.Frame.Offset(offset, 0)))
	}
	if pv.failed && (view == nil || pv.placeholder) {
		s.chrome.renderMessage(bounds, s.localizer.Text(locale.LoadFailed))
	}
}

func (s *viewerState) cleanup() {
	s.pages.destroy()
	s.chrome.destroy()
	s.directional.Reset()
}
