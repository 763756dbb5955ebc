package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BrandonKowalski/imageviewer/pkg/imageviewer/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a physical input translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputMapping maps keyboard keys and controller buttons to virtual buttons.
type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton `json:"keyboard_map"`
	ControllerButtonMap map[uint8]constants.VirtualButton       `json:"controller_button_map"`
}

// DefaultInputMapping is used when no custom mapping is supplied.
func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.Keycode(sdl.K_UP):        constants.VirtualButtonUp,
			sdl.Keycode(sdl.K_DOWN):      constants.VirtualButtonDown,
			sdl.Keycode(sdl.K_LEFT):      constants.VirtualButtonLeft,
			sdl.Keycode(sdl.K_RIGHT):     constants.VirtualButtonRight,
			sdl.Keycode(sdl.K_a):         constants.VirtualButtonA,
			sdl.Keycode(sdl.K_RETURN):    constants.VirtualButtonA,
			sdl.Keycode(sdl.K_b):         constants.VirtualButtonB,
			sdl.Keycode(sdl.K_ESCAPE):    constants.VirtualButtonB,
			sdl.Keycode(sdl.K_BACKSPACE): constants.VirtualButtonB,
			sdl.Keycode(sdl.K_x):         constants.VirtualButtonX,
			sdl.Keycode(sdl.K_y):         constants.VirtualButtonY,
			sdl.Keycode(sdl.K_PAGEUP):    constants.VirtualButtonL1,
			sdl.Keycode(sdl.K_PAGEDOWN):  constants.VirtualButtonR1,
			sdl.Keycode(sdl.K_SPACE):     constants.VirtualButtonStart,
			sdl.Keycode(sdl.K_TAB):       constants.VirtualButtonSelect,
			sdl.Keycode(sdl.K_m):         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[uint8]constants.VirtualButton{
			uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			uint8(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonB,
			uint8(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonA,
			uint8(sdl.CONTROLLER_BUTTON_X):             constants.VirtualButtonY,
			uint8(sdl.CONTROLLER_BUTTON_Y):             constants.VirtualButtonX,
			uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
			uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
			uint8(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
			uint8(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
			uint8(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
		},
	}
}

// flipped swaps A/B and X/Y for devices that label face buttons directly.
func (m *InputMapping) flipped() *InputMapping {
	swap := map[constants.VirtualButton]constants.VirtualButton{
		constants.VirtualButtonA: constants.VirtualButtonB,
		constants.VirtualButtonB: constants.VirtualButtonA,
		constants.VirtualButtonX: constants.VirtualButtonY,
		constants.VirtualButtonY: constants.VirtualButtonX,
	}

	out := &InputMapping{
		KeyboardMap:         m.KeyboardMap,
		ControllerButtonMap: make(map[uint8]constants.VirtualButton, len(m.ControllerButtonMap)),
	}
	for code, vb := range m.ControllerButtonMap {
		if swapped, ok := swap[vb]; ok {
			vb = swapped
		}
		out.ControllerButtonMap[code] = vb
	}
	return out
}

// LoadInputMappingBytes parses a JSON mapping.
func LoadInputMappingBytes(data []byte) (*InputMapping, error) {
	var m InputMapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse input mapping: %w", err)
	}
	if len(m.KeyboardMap) == 0 && len(m.ControllerButtonMap) == 0 {
		return nil, fmt.Errorf("parse input mapping: no bindings")
	}
	return &m, nil
}

var (
	mappingMu       sync.Mutex
	customMapping   *InputMapping
	flipFaceButtons bool
	processor       *InputProcessor
	controllers     = map[sdl.JoystickID]*sdl.GameController{}
)

// SetInputMappingBytes installs a custom JSON mapping. Invalid data is logged
// and ignored.
func SetInputMappingBytes(data []byte) {
	m, err := LoadInputMappingBytes(data)
	if err != nil {
		GetInternalLogger().Error("Ignoring custom input mapping", "error", err)
		return
	}
	mappingMu.Lock()
	customMapping = m
	mappingMu.Unlock()
}

// SetFlipFaceButtons enables direct A=A, B=B face button mapping.
func SetFlipFaceButtons(flip bool) {
	mappingMu.Lock()
	flipFaceButtons = flip
	mappingMu.Unlock()
}

// InputProcessor translates SDL events into virtual button events.
type InputProcessor struct {
	mapping *InputMapping
}

// InitInputProcessor builds the processor from the current mapping settings
// and opens any controllers already attached.
func InitInputProcessor() {
	mappingMu.Lock()
	mapping := customMapping
	flip := flipFaceButtons || strings.EqualFold(os.Getenv(constants.FlipButtonsEnvVar), "true")
	mappingMu.Unlock()

	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	if flip {
		mapping = mapping.flipped()
	}
	processor = &InputProcessor{mapping: mapping}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	if processor == nil {
		processor = &InputProcessor{mapping: DefaultInputMapping()}
	}
	return processor
}

// ProcessSDLEvent returns the virtual button event for e, or nil when e is
// not a mapped button.
func (p *InputProcessor) ProcessSDLEvent(e sdl.Event) *Event {
	switch ev := e.(type) {
	case *sdl.KeyboardEvent:
		button, ok := p.mapping.KeyboardMap[ev.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: ev.Type == sdl.KEYDOWN, Repeat: ev.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button, ok := p.mapping.ControllerButtonMap[ev.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: ev.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		if ev.Type == sdl.CONTROLLERDEVICEADDED {
			openController(int(ev.Which))
		}
	}
	return nil
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := controllers[id]; ok {
		return
	}
	controllers[id] = gc
	GetInternalLogger().Debug("Opened game controller", "name", gc.Name(), "index", index)
}

func CloseAllControllers() {
	for id, gc := range controllers {
		gc.Close()
		delete(controllers, id)
	}
}
