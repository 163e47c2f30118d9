// Package action dispatches classified gesture events to the operating
// system's input facilities.
package action

// Button identifies a mouse button.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Backend performs physical input actions. Implementations must tolerate
// the platform denying synthetic input; the dispatcher logs and drops such
// failures rather than aborting the frame loop.
type Backend interface {
	// ScreenSize returns the screen dimensions in pixels.
	ScreenSize() (width, height int)

	// MoveCursor moves the pointer to an absolute screen coordinate.
	// Coordinates arrive pre-clamped to [0,width-1] x [0,height-1].
	MoveCursor(x, y int) error

	// Click presses and releases a mouse button.
	Click(button Button) error

	// DoubleClick performs a left double click.
	DoubleClick() error

	// Scroll scrolls vertically; positive amounts scroll up.
	Scroll(amount int) error

	// Hotkey taps a key chord. Keys are given in press order, modifiers
	// first (e.g. "ctrl", "a").
	Hotkey(keys ...string) error
}
