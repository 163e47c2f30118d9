// Package app wires capture, detection, gesture classification, and action
// dispatch into the frame pipeline.
package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/action"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing defaults.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 2
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds without motion before
	// switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	// Source is a camera device index ("0") or a video file path.
	Source string

	// RecordDir, when non-empty, enables session recording into that directory.
	RecordDir string

	Store           *store.Store
	IdleFPS         int
	ActiveFPS       int
	MotionThreshold float64
	Gesture         gesture.Config
}

// App orchestrates the pipeline from camera frames to pointer commands.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	session    *gesture.Session
	dispatcher *action.Dispatcher
	recorder   *capture.Recorder

	enabled     bool
	paused      bool
	fps         float64
	lastGesture string
	onGesture   func(gesture.Event)
	mu          sync.RWMutex
	stopCh      chan struct{}
}

// New creates an App driving the given input backend.
func New(config Config, backend action.Backend) *App {
	if config.IdleFPS <= 0 {
		config.IdleFPS = IdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = ActiveFPS
	}
	if config.MotionThreshold <= 0 {
		config.MotionThreshold = 1.0 // percent of pixels changed
	}

	screenW, screenH := backend.ScreenSize()

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.Source),
		motion:     capture.NewMotionDetector(config.MotionThreshold),
		session:    gesture.NewSession(config.Gesture, screenW, screenH),
		dispatcher: action.NewDispatcher(backend),
		enabled:    true,
	}
	a.dispatcher.OnEvent(a.recordEvent)

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables mouse control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether mouse control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Paused reports whether the fist-hold pause latch is engaged.
func (a *App) Paused() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.paused
}

// FPS returns the measured pipeline frame rate.
func (a *App) FPS() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.fps
}

// LastGesture returns the name of the most recently dispatched action.
// Pointer moves are not reported.
func (a *App) LastGesture() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastGesture
}

// OnGesture sets a callback invoked for every dispatched event.
func (a *App) OnGesture(fn func(gesture.Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onGesture = fn
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// SetCamera replaces the frame source. Only valid before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// Start opens the camera and begins the pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.config.IdleFPS)

	if a.config.RecordDir != "" {
		w, h := a.camera.Size()
		rec, err := capture.NewRecorder(a.config.RecordDir, w, h, float64(a.config.ActiveFPS))
		if err != nil {
			a.camera.Close()
			return err
		}
		a.recorder = rec
		log.Printf("Recording session to %s", rec.Path())
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.recorder != nil {
		if err := a.recorder.Close(); err != nil {
			log.Printf("Error closing recorder: %v", err)
		}
		a.recorder = nil
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pipeline stopped")
}

// recordEvent is the dispatcher callback: it logs the action, mirrors it to
// the events table, and forwards it to the registered gesture callback.
func (a *App) recordEvent(e gesture.Event) {
	a.mu.Lock()
	if e.Kind != gesture.KindMove {
		a.lastGesture = e.Kind.String()
	}
	fn := a.onGesture
	a.mu.Unlock()

	// Moves fire every frame; logging them would swamp the table.
	if a.config.Store != nil && e.Kind != gesture.KindMove {
		err := a.config.Store.Events().Create(&store.Event{
			ID:   uuid.New().String(),
			Kind: e.Kind.String(),
			X:    e.X,
			Y:    e.Y,
		})
		if err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}

	if fn != nil {
		fn(e)
	}
}

func (a *App) setFrameStats(fps float64, paused bool) {
	a.mu.Lock()
	a.fps = fps
	a.paused = paused
	a.mu.Unlock()
}
