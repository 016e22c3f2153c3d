package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"a":     ebiten.StandardGamepadButtonRightBottom,
	"b":     ebiten.StandardGamepadButtonRightRight,
	"x":     ebiten.StandardGamepadButtonRightLeft,
	"y":     ebiten.StandardGamepadButtonRightTop,
	"lb":    ebiten.StandardGamepadButtonFrontTopLeft,
	"rb":    ebiten.StandardGamepadButtonFrontTopRight,
	"lt":    ebiten.StandardGamepadButtonFrontBottomLeft,
	"rt":    ebiten.StandardGamepadButtonFrontBottomRight,
	"back":  ebiten.StandardGamepadButtonCenterLeft,
	"start": ebiten.StandardGamepadButtonCenterRight,
	"up":    ebiten.StandardGamepadButtonLeftTop,
	"down":  ebiten.StandardGamepadButtonLeftBottom,
	"left":  ebiten.StandardGamepadButtonLeftLeft,
	"right": ebiten.StandardGamepadButtonLeftRight,
}

// binding is the parsed physical sources of one signal
type binding struct {
	keys []ebiten.Key
	pads []ebiten.StandardGamepadButton
}

// InputSystem polls keyboard and gamepads into abstract input frames
type InputSystem struct {
	bindings map[string]binding
	deadzone float64
	gamepads []ebiten.GamepadID
}

// NewInputSystem parses the bindings. Unknown key or button names are
// reported as errors.
func NewInputSystem(cfg *config.BindingsConfig) (*InputSystem, error) {
	s := &InputSystem{
		bindings: make(map[string]binding),
		deadzone: cfg.Deadzone,
	}
	for _, id := range []string{input.Left, input.Right, input.Jump, input.Crouch, input.Sprint, input.Dash} {
		action, err := cfg.Action(id)
		if err != nil {
			continue
		}

		var b binding
		for _, name := range action.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("failed to parse key %q for %s: %w", name, id, err)
			}
			b.keys = append(b.keys, k)
		}
		for _, name := range action.Gamepad {
			pb, ok := gamepadButtons[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("failed to parse gamepad button %q for %s", name, id)
			}
			b.pads = append(b.pads, pb)
		}
		s.bindings[id] = b
	}
	return s, nil
}

// Poll reads the devices. Must be called from the ebiten update loop.
func (s *InputSystem) Poll() input.Frame {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	f := input.Frame{
		Left:   s.value(input.Left),
		Right:  s.value(input.Right),
		Jump:   s.value(input.Jump),
		Crouch: s.value(input.Crouch),
		Sprint: s.value(input.Sprint),
		Dash:   s.value(input.Dash),
	}
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(v) > math.Abs(f.StickX) {
			f.StickX = applyDeadzone(v, s.deadzone)
		}
	}
	return f
}

func (s *InputSystem) value(id string) float64 {
	b, ok := s.bindings[id]
	if !ok {
		return 0
	}
	for _, k := range b.keys {
		if ebiten.IsKeyPressed(k) {
			return 1
		}
	}
	v := 0.0
	for _, gp := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, pb := range b.pads {
			v = math.Max(v, ebiten.StandardGamepadButtonValue(gp, pb))
		}
	}
	return v
}

// applyDeadzone zeroes small stick deflections and rescales the rest to
// the full [-1,1] range
func applyDeadzone(v, deadzone float64) float64 {
	if deadzone <= 0 {
		return v
	}
	if deadzone >= 1 || math.Abs(v) <= deadzone {
		return 0
	}
	return sign(v) * (math.Abs(v) - deadzone) / (1 - deadzone)
}
