package app

import (
	"image"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/overlay"
)

// runPipeline is the main loop that turns camera frames into pointer commands.
//
// Pipeline logic:
// 1. Start in idle mode (low frame rate)
// 2. On motion detected, switch to active mode
// 3. Run hand detection on active frames
// 4. Convert the first hand's landmarks into a gesture observation
// 5. Classify the observation and dispatch the resulting events
// 6. Draw the HUD and append to the session recording
// 7. After 2s without motion, switch back to idle mode
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()
	lastFrameTime := time.Now()

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			now := time.Now()
			fps := 0.0
			if d := now.Sub(lastFrameTime); d > 0 {
				fps = float64(time.Second) / float64(d)
			}
			lastFrameTime = now

			motionDetected, _ := a.motion.Detect(frame)
			if motionDetected {
				lastMotionTime = now
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(a.config.ActiveFPS)
					frameInterval = time.Second / time.Duration(a.config.ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(a.config.IdleFPS)
					frameInterval = time.Second / time.Duration(a.config.IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			state := overlay.State{
				Paused: a.Paused(),
				FPS:    fps,
			}

			if activeMode {
				state = a.ProcessFrame(frame, fps)
			}

			a.setFrameStats(fps, state.Paused)

			overlay.Draw(frame, state)
			if a.recorder != nil {
				if err := a.recorder.Write(frame); err != nil {
					log.Printf("Error writing recording: %v", err)
				}
			}
			frame.Close()
		}
	}
}

// ProcessFrame runs detection and classification on one frame and returns
// the HUD state describing it. The pipeline calls it for every active-mode
// frame; tests and custom frame sources can call it directly.
func (a *App) ProcessFrame(frame *gocv.Mat, fps float64) overlay.State {
	cfg := a.session.Config()

	state := overlay.State{
		Paused: a.session.Paused(),
		FPS:    fps,
		ActiveRect: image.Rect(
			cfg.FrameMargin, cfg.FrameMargin,
			cfg.FrameWidth-cfg.FrameMargin, cfg.FrameHeight-cfg.FrameMargin,
		),
	}

	d := a.Detector()
	if d == nil {
		return state
	}

	hands, err := d.Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		return state
	}
	if len(hands) == 0 {
		return state
	}

	hand := &hands[0]

	obs := gesture.Observation{
		Fingers: gesture.FingerVector(hand.FingersUp()),
	}
	tx, ty := hand.PixelPoint(detector.ThumbTip, cfg.FrameWidth, cfg.FrameHeight)
	obs.ThumbTip = gesture.Point{X: tx, Y: ty}
	ix, iy := hand.PixelPoint(detector.IndexTip, cfg.FrameWidth, cfg.FrameHeight)
	obs.IndexTip = gesture.Point{X: ix, Y: iy}
	mx, my := hand.PixelPoint(detector.MiddleTip, cfg.FrameWidth, cfg.FrameHeight)
	obs.MiddleTip = gesture.Point{X: mx, Y: my}

	events := a.session.Advance(obs, time.Now())
	a.dispatcher.Dispatch(events)

	state.Paused = a.session.Paused()
	state.HasHand = true
	state.IndexTip = image.Pt(int(ix), int(iy))

	return state
}
