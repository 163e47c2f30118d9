// Package detector provides hand landmark detection for the Mudra virtual
// mouse.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a detected landmark position. X and Y are normalized to the
// frame (0..1, y growing downward); Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// fingerJoints pairs each finger's tip with the joint it is compared against
// when deciding extension.
var fingerJoints = [5][2]int{
	{ThumbTip, ThumbIP},
	{IndexTip, IndexPIP},
	{MiddleTip, MiddlePIP},
	{RingTip, RingPIP},
	{PinkyTip, PinkyPIP},
}

// FingersUp derives the five-element finger-extended vector, ordered thumb
// to pinky.
//
// A finger counts as extended when its tip sits above its PIP joint (smaller
// Y). The thumb cannot bend that way, so it counts as extended when the tip
// clears the IP joint sideways, away from the palm: toward larger X on a
// right hand, smaller X on a left hand.
func (h *HandLandmarks) FingersUp() [5]bool {
	var up [5]bool

	tip, ip := h.Points[ThumbTip], h.Points[ThumbIP]
	if h.Handedness == "Left" {
		up[0] = tip.X < ip.X
	} else {
		up[0] = tip.X > ip.X
	}

	for i := 1; i < 5; i++ {
		joints := fingerJoints[i]
		up[i] = h.Points[joints[0]].Y < h.Points[joints[1]].Y
	}

	return up
}

// PixelPoint converts a landmark's normalized position to frame-pixel
// coordinates for the given frame dimensions.
func (h *HandLandmarks) PixelPoint(index, width, height int) (float64, float64) {
	p := h.Points[index]
	return p.X * float64(width), p.Y * float64(height)
}
