// Package overlay draws the heads-up display onto captured frames: pause
// state, frame rate, the active pointer rectangle and the tracked
// fingertip.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	colorActive  = color.RGBA{G: 255}
	colorPaused  = color.RGBA{R: 255}
	colorRect    = color.RGBA{R: 255, B: 255}
	colorFPS     = color.RGBA{B: 255}
	colorFingers = color.RGBA{R: 255, B: 255}
)

// State is everything the HUD shows for one frame.
type State struct {
	Paused bool
	FPS    float64

	// ActiveRect is the screen-mapping region drawn on active frames.
	ActiveRect image.Rectangle

	// HasHand marks IndexTip as valid for this frame.
	HasHand  bool
	IndexTip image.Point
}

// Draw annotates the frame in place.
func Draw(frame *gocv.Mat, state State) {
	label, labelColor := "ACTIVE", colorActive
	if state.Paused {
		label, labelColor = "PAUSED", colorPaused
	}
	gocv.PutText(frame, label, image.Pt(20, 30), gocv.FontHersheyPlain, 2, labelColor, 2)
	gocv.PutText(frame, fmt.Sprintf("FPS:%d", int(state.FPS)), image.Pt(20, 90), gocv.FontHersheyPlain, 2, colorFPS, 2)

	if state.HasHand {
		gocv.Rectangle(frame, state.ActiveRect, colorRect, 2)
		if !state.Paused {
			gocv.Circle(frame, state.IndexTip, 15, colorFingers, -1)
		}
	}
}
