package gesture

import "time"

// PauseController toggles the session between active and paused when a fist
// is held for long enough. While paused no other classification runs; the
// fist check itself keeps running so the user can resume.
type PauseController struct {
	hold      time.Duration
	paused    bool
	restSince time.Time // zero while no fist hold is in progress
	latched   bool      // toggle already fired for the current hold
}

// NewPauseController creates a controller in the active state.
func NewPauseController(hold time.Duration) *PauseController {
	return &PauseController{hold: hold}
}

// Paused reports the current state.
func (p *PauseController) Paused() bool {
	return p.paused
}

// Observe feeds one frame's finger vector into the state machine and
// reports whether the pause state flipped on this frame.
//
// A hold toggles exactly once: after firing, the controller latches until a
// non-fist frame is seen, so keeping the fist closed does not re-toggle.
// Any non-fist frame also discards partial hold credit.
func (p *PauseController) Observe(fingers FingerVector, now time.Time) bool {
	if !fingers.IsFist() {
		p.restSince = time.Time{}
		p.latched = false
		return false
	}

	if p.latched {
		return false
	}

	if p.restSince.IsZero() {
		p.restSince = now
		return false
	}

	if now.Sub(p.restSince) >= p.hold {
		p.paused = !p.paused
		p.restSince = time.Time{}
		p.latched = true
		return true
	}

	return false
}
