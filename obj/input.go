package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls keyboard and gamepad once per frame. Mute is a toggle: M or
// the gamepad select button flips it.
type Input struct {
	state Keys

	// RestartPressed is true on the frame R was pressed.
	RestartPressed bool
	// PausePressed is true on the frame Escape or start was pressed.
	PausePressed bool
}

// NewInput creates an Input with the given initial mute state.
func NewInput(muted bool) *Input {
	return &Input{state: Keys{Mute: muted}}
}

// Keys returns the last polled state.
func (i *Input) Keys() Keys {
	return i.state
}

// SetMuted overrides the mute toggle.
func (i *Input) SetMuted(m bool) {
	i.state.Mute = m
}

// Update polls the devices.
func (i *Input) Update() {
	var k Keys
	k.Mute = i.state.Mute

	k.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	k.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	k.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp)
	k.Throw = ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyF)

	muteToggled := inpututil.IsKeyJustPressed(ebiten.KeyM)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: left stick X, A jumps, X throws, back toggles mute
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			k.Left = true
		} else if leftX > 0.3 {
			k.Right = true
		}
		k.Left = k.Left || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
		k.Right = k.Right || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)

		k.Jump = k.Jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		k.Throw = k.Throw || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)

		muteToggled = muteToggled || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	if muteToggled {
		k.Mute = !k.Mute
	}
	i.state = k
}
