package gesture

import "time"

// Category names a debounced family of actions.
type Category string

const (
	// CategoryClick gates left, double and right clicks.
	CategoryClick Category = "click"
	// CategoryMotion gates swipes and scrolls with one shared timestamp,
	// so only one of the two can fire per debounce window.
	CategoryMotion Category = "swipe-or-scroll"
)

// TimerBank tracks the last trigger time per action category. Landmark
// jitter produces many qualifying frames inside one physical gesture; the
// bank is what keeps those from firing as repeated actions.
type TimerBank struct {
	last map[Category]time.Time
}

// NewTimerBank creates an empty bank. Every category starts as "never
// triggered" and allows its first attempt.
func NewTimerBank() *TimerBank {
	return &TimerBank{last: make(map[Category]time.Time)}
}

// Allow reports whether at least minInterval has elapsed since the
// category last triggered. A true result does not record the trigger;
// callers that act on it must follow up with Mark.
func (b *TimerBank) Allow(cat Category, now time.Time, minInterval time.Duration) bool {
	last, ok := b.last[cat]
	if !ok {
		return true
	}
	return now.Sub(last) >= minInterval
}

// Mark records a trigger. Timestamps only move forward; a stale now is
// ignored.
func (b *TimerBank) Mark(cat Category, now time.Time) {
	if last, ok := b.last[cat]; ok && now.Before(last) {
		return
	}
	b.last[cat] = now
}

// Last returns the recorded trigger time for a category, if any.
func (b *TimerBank) Last(cat Category) (time.Time, bool) {
	last, ok := b.last[cat]
	return last, ok
}
