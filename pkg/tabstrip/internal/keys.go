package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
)

var keycodes = map[sdl.Keycode]constants.Key{
	sdl.K_LEFT:      constants.KeyArrowLeft,
	sdl.K_RIGHT:     constants.KeyArrowRight,
	sdl.K_UP:        constants.KeyArrowUp,
	sdl.K_DOWN:      constants.KeyArrowDown,
	sdl.K_HOME:      constants.KeyHome,
	sdl.K_END:       constants.KeyEnd,
	sdl.K_SPACE:     constants.KeySpace,
	sdl.K_RETURN:    constants.KeyEnter,
	sdl.K_KP_ENTER:  constants.KeyEnter,
	sdl.K_ESCAPE:    constants.KeyEscape,
	sdl.K_BACKSPACE: constants.KeyEscape,
	sdl.K_TAB:       constants.KeyTab,
}

// Handheld layout: the d-pad navigates, A commits, B backs out and the
// shoulders jump to either end.
var controllerButtons = map[sdl.GameControllerButton]constants.Key{
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.KeyArrowLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.KeyArrowRight,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.KeyArrowUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.KeyArrowDown,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.KeyHome,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.KeyEnd,
	sdl.CONTROLLER_BUTTON_A:             constants.KeySpace,
	sdl.CONTROLLER_BUTTON_B:             constants.KeyEscape,
	sdl.CONTROLLER_BUTTON_START:         constants.KeyEnter,
	sdl.CONTROLLER_BUTTON_BACK:          constants.KeyTab,
}

// KeyFromKeycode translates an SDL keycode. Unmapped keys are KeyUnassigned.
func KeyFromKeycode(code sdl.Keycode) constants.Key {
	return keycodes[code]
}

// KeyFromButton translates a game controller button.
func KeyFromButton(button sdl.GameControllerButton) constants.Key {
	return controllerButtons[button]
}

// TranslateEvent maps an SDL input event to a key and whether it is a press.
// Repeats generated by the OS are dropped; held keys repeat through
// input.Repeater instead.
func TranslateEvent(event sdl.Event) (key constants.Key, pressed bool, ok bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return constants.KeyUnassigned, false, false
		}
		key = KeyFromKeycode(e.Keysym.Sym)
		pressed = e.Type == sdl.KEYDOWN
	case *sdl.ControllerButtonEvent:
		key = KeyFromButton(sdl.GameControllerButton(e.Button))
		pressed = e.Type == sdl.CONTROLLERBUTTONDOWN
	default:
		return constants.KeyUnassigned, false, false
	}
	return key, pressed, key != constants.KeyUnassigned
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		OpenController(i)
	}
}

// OpenController opens the joystick at index if it is a game controller.
// Controllers must be open for their button events to arrive.
func OpenController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	if c := sdl.GameControllerOpen(index); c != nil {
		logging.GetInternalLogger().Debug("tabstrip: controller opened", "name", c.Name())
		controllers = append(controllers, c)
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}
