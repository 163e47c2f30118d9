package gesture

import (
	"math"
	"time"
)

// Advance processes one frame's observation and returns the gesture events
// it classifies, in dispatch order. A frame may produce zero, one or several
// events; move and click run on independent checks.
//
// The pause check always runs first. While paused only a pause toggle can be
// emitted; every other check, including the trail update, is skipped.
func (s *Session) Advance(obs Observation, now time.Time) []Event {
	var events []Event

	if s.pause.Observe(obs.Fingers, now) {
		events = append(events, Event{Kind: KindPauseToggle})
	}
	if s.pause.Paused() {
		return events
	}

	if ev, ok := s.classifyMove(obs); ok {
		events = append(events, ev)
	}
	if ev, ok := s.classifyClick(obs, now); ok {
		events = append(events, ev)
	}
	if ev, ok := s.classifyRightClick(obs, now); ok {
		events = append(events, ev)
	}

	s.trail.Push(obs.IndexTip.X, obs.IndexTip.Y, now)
	if dx, dy, ok := s.trail.Displacement(); ok {
		if ev, ok := s.classifySwipe(obs, dx, dy, now); ok {
			events = append(events, ev)
		}
		if ev, ok := s.classifyScroll(obs, dy, now); ok {
			events = append(events, ev)
		}
	}

	return events
}

// classifyMove fires when the index finger is the only one extended.
func (s *Session) classifyMove(obs Observation) (Event, bool) {
	if !obs.Fingers.IndexOnly() {
		return Event{}, false
	}
	x, y := s.mapper.Map(obs.IndexTip.X, obs.IndexTip.Y)
	return Event{Kind: KindMove, X: x, Y: y}, true
}

// classifyClick fires when index and middle are both extended. A pinched
// pair reads as a left click, a wide V-spread as a double click. Distances
// between the two thresholds are a deliberate dead zone.
func (s *Session) classifyClick(obs Observation, now time.Time) (Event, bool) {
	if !obs.Fingers[Index] || !obs.Fingers[Middle] {
		return Event{}, false
	}

	d1 := Distance(obs.IndexTip, obs.MiddleTip)
	switch {
	case d1 < s.cfg.LeftClickMaxDist:
		if s.timers.Allow(CategoryClick, now, s.cfg.ClickDebounce) {
			s.timers.Mark(CategoryClick, now)
			return Event{Kind: KindLeftClick}, true
		}
	case d1 > s.cfg.DoubleClickMinDist:
		if s.timers.Allow(CategoryClick, now, s.cfg.ClickDebounce) {
			s.timers.Mark(CategoryClick, now)
			return Event{Kind: KindDoubleClick}, true
		}
	}
	return Event{}, false
}

// classifyRightClick fires when thumb and index are extended and their tips
// pinch together.
func (s *Session) classifyRightClick(obs Observation, now time.Time) (Event, bool) {
	if !obs.Fingers[Thumb] || !obs.Fingers[Index] {
		return Event{}, false
	}

	d2 := Distance(obs.ThumbTip, obs.IndexTip)
	if d2 < s.cfg.RightClickMaxDist && s.timers.Allow(CategoryClick, now, s.cfg.ClickDebounce) {
		s.timers.Mark(CategoryClick, now)
		return Event{Kind: KindRightClick}, true
	}
	return Event{}, false
}

// classifySwipe fires on a fast, near-horizontal open-palm displacement.
// Vertical drift of half the swipe threshold or more rejects the motion as
// diagonal.
func (s *Session) classifySwipe(obs Observation, dx, dy float64, now time.Time) (Event, bool) {
	if !obs.Fingers.AllExtended() {
		return Event{}, false
	}
	if !s.timers.Allow(CategoryMotion, now, s.cfg.SwipeCooldown) {
		return Event{}, false
	}
	if math.Abs(dy) >= s.cfg.SwipeThreshold/2 {
		return Event{}, false
	}

	switch {
	case dx <= -s.cfg.SwipeThreshold:
		s.timers.Mark(CategoryMotion, now)
		return Event{Kind: KindSwipeLeft}, true
	case dx >= s.cfg.SwipeThreshold:
		s.timers.Mark(CategoryMotion, now)
		return Event{Kind: KindSwipeRight}, true
	}
	return Event{}, false
}

// classifyScroll fires on a vertical displacement with an open palm, or with
// the index extended and at most one other finger up. It shares the motion
// timer with swipes, so a swipe in the same frame wins the debounce window.
func (s *Session) classifyScroll(obs Observation, dy float64, now time.Time) (Event, bool) {
	eligible := obs.Fingers.AllExtended() || (obs.Fingers[Index] && obs.Fingers.Count() <= 2)
	if !eligible {
		return Event{}, false
	}
	if !s.timers.Allow(CategoryMotion, now, s.cfg.ScrollCooldown) {
		return Event{}, false
	}

	switch {
	case dy <= -s.cfg.ScrollThreshold:
		s.timers.Mark(CategoryMotion, now)
		return Event{Kind: KindScrollUp}, true
	case dy >= s.cfg.ScrollThreshold:
		s.timers.Mark(CategoryMotion, now)
		return Event{Kind: KindScrollDown}, true
	}
	return Event{}, false
}
