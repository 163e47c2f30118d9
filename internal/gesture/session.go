package gesture

// Session owns all mutable recognition state for one hand-tracking session:
// the fingertip trail, the debounce timers, the pause state machine and the
// pointer history. Nothing here is process-global, so independent sessions
// can run side by side.
//
// A session is not safe for concurrent use. The frame loop is the only
// mutator, one frame at a time.
type Session struct {
	cfg    Config
	trail  *Trail
	timers *TimerBank
	pause  *PauseController
	mapper *PointerMapper
}

// NewSession creates a session mapping gestures onto a screen of the given
// dimensions.
func NewSession(cfg Config, screenW, screenH int) *Session {
	return &Session{
		cfg:    cfg,
		trail:  NewTrail(cfg.TrailSize),
		timers: NewTimerBank(),
		pause:  NewPauseController(cfg.PauseHold),
		mapper: NewPointerMapper(cfg, screenW, screenH),
	}
}

// Paused reports whether the session is currently paused.
func (s *Session) Paused() bool {
	return s.pause.Paused()
}

// Config returns the session's configuration.
func (s *Session) Config() Config {
	return s.cfg
}
