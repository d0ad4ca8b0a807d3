package components

import (
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

func (m InputMethod) String() string {
	switch m {
	case InputMouse:
		return "mouse"
	case InputGamepad:
		return "gamepad"
	default:
		return "keyboard"
	}
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Held            [cfg.ActionCount]int  // Consecutive frames each action has been held
	WheelY          float64               // Wheel movement this frame, positive = up
	AnalogY         float64               // Left stick vertical axis past the deadzone
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
