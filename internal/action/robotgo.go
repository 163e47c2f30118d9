package action

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotgoBackend implements Backend on top of robotgo's synthetic input.
type RobotgoBackend struct{}

// NewRobotgoBackend creates the system input backend.
func NewRobotgoBackend() *RobotgoBackend {
	return &RobotgoBackend{}
}

// ScreenSize returns the primary display dimensions.
func (b *RobotgoBackend) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// MoveCursor moves the pointer. Coordinates are clamped to the screen
// bounds before the move is issued.
func (b *RobotgoBackend) MoveCursor(x, y int) error {
	w, h := robotgo.GetScreenSize()
	x = clamp(x, 0, w-1)
	y = clamp(y, 0, h-1)
	robotgo.Move(x, y)
	return nil
}

// Click presses and releases the given button.
func (b *RobotgoBackend) Click(button Button) error {
	robotgo.Click(string(button))
	return nil
}

// DoubleClick performs a left double click.
func (b *RobotgoBackend) DoubleClick() error {
	robotgo.Click("left", true)
	return nil
}

// Scroll scrolls vertically by the given amount.
func (b *RobotgoBackend) Scroll(amount int) error {
	robotgo.Scroll(0, amount)
	return nil
}

// Hotkey taps a key chord given in press order, modifiers first.
func (b *RobotgoBackend) Hotkey(keys ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("hotkey: no keys given")
	}
	// robotgo wants the non-modifier key first, then modifiers.
	key := keys[len(keys)-1]
	mods := make([]interface{}, 0, len(keys)-1)
	for _, m := range keys[:len(keys)-1] {
		mods = append(mods, m)
	}
	return robotgo.KeyTap(key, mods...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
