package gesture

import "time"

// Config holds the classifier's geometry and timing constants. The defaults
// are the tuned values the system ships with; tests may shrink them.
type Config struct {
	// FrameWidth and FrameHeight are the camera frame dimensions in pixels.
	FrameWidth  int
	FrameHeight int

	// FrameMargin is the inset from each frame edge that bounds the active
	// rectangle mapped onto the screen.
	FrameMargin int

	// Smoothing is the EMA damping factor for pointer movement.
	// Values above 1 trade responsiveness for less jitter.
	Smoothing float64

	// ClickDebounce is the minimum interval between click-category events.
	ClickDebounce time.Duration

	// LeftClickMaxDist is the maximum index/middle fingertip distance in
	// pixels that reads as a left click.
	LeftClickMaxDist float64

	// DoubleClickMinDist is the minimum index/middle spread in pixels that
	// reads as a V-shape double click. Must exceed LeftClickMaxDist; the
	// gap between the two is a dead zone that produces no click.
	DoubleClickMinDist float64

	// RightClickMaxDist is the maximum thumb/index fingertip distance in
	// pixels that reads as a right click.
	RightClickMaxDist float64

	// SwipeThreshold is the minimum horizontal trail displacement in pixels
	// for a swipe. Vertical drift of half this value or more rejects the
	// swipe as diagonal.
	SwipeThreshold float64

	// ScrollThreshold is the minimum vertical trail displacement in pixels
	// for a scroll.
	ScrollThreshold float64

	// SwipeCooldown and ScrollCooldown gate the shared motion timer.
	SwipeCooldown  time.Duration
	ScrollCooldown time.Duration

	// PauseHold is how long a fist must be held continuously before the
	// pause state toggles.
	PauseHold time.Duration

	// TrailSize is the fingertip history capacity used for displacement.
	TrailSize int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		FrameWidth:         480,
		FrameHeight:        360,
		FrameMargin:        100,
		Smoothing:          3,
		ClickDebounce:      120 * time.Millisecond,
		LeftClickMaxDist:   35,
		DoubleClickMinDist: 60,
		RightClickMaxDist:  30,
		SwipeThreshold:     120,
		ScrollThreshold:    80,
		SwipeCooldown:      700 * time.Millisecond,
		ScrollCooldown:     200 * time.Millisecond,
		PauseHold:          350 * time.Millisecond,
		TrailSize:          5,
	}
}
