package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Pose fixtures below are right hands in normalized coordinates with the
// wrist near the bottom of the frame. They are tuned so FingersUp returns
// the pose's finger vector and the fingertip geometry triggers the matching
// gesture at a 480x360 frame size.

// curledFinger writes a curled finger: tip folded back below the PIP joint.
func curledFinger(h *HandLandmarks, mcp int, baseX, baseY float64) {
	h.Points[mcp] = Point3D{X: baseX, Y: baseY, Z: -0.02}
	h.Points[mcp+1] = Point3D{X: baseX, Y: baseY - 0.04, Z: -0.05} // PIP
	h.Points[mcp+2] = Point3D{X: baseX - 0.02, Y: baseY - 0.01, Z: -0.04}
	h.Points[mcp+3] = Point3D{X: baseX - 0.03, Y: baseY + 0.02, Z: -0.02} // tip below PIP
}

// extendedFinger writes a straight finger pointing up from its MCP joint.
func extendedFinger(h *HandLandmarks, mcp int, baseX, baseY, tipX, tipY float64) {
	h.Points[mcp] = Point3D{X: baseX, Y: baseY}
	h.Points[mcp+1] = Point3D{X: baseX + (tipX-baseX)/3, Y: baseY + (tipY-baseY)/3}
	h.Points[mcp+2] = Point3D{X: baseX + 2*(tipX-baseX)/3, Y: baseY + 2*(tipY-baseY)/3}
	h.Points[mcp+3] = Point3D{X: tipX, Y: tipY}
}

// tuckedThumb writes a thumb folded across the palm (tip inside the IP
// joint on X).
func tuckedThumb(h *HandLandmarks) {
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75}
	h.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.70}
	h.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.66}
	h.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.64}
}

// FistLandmarks returns a hand with every finger curled.
func FistLandmarks() HandLandmarks {
	h := HandLandmarks{Handedness: "Right", Score: 0.95}
	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8}
	tuckedThumb(&h)
	curledFinger(&h, IndexMCP, 0.55, 0.68)
	curledFinger(&h, MiddleMCP, 0.50, 0.66)
	curledFinger(&h, RingMCP, 0.45, 0.68)
	curledFinger(&h, PinkyMCP, 0.40, 0.70)
	return h
}

// PointingLandmarks returns a hand with only the index finger extended,
// the pose that drives pointer movement.
func PointingLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendedFinger(&h, IndexMCP, 0.55, 0.68, 0.58, 0.35)
	return h
}

// VSignLandmarks returns a hand with index and middle fingers extended and
// their tips close together, the pose that reads as a left click.
func VSignLandmarks() HandLandmarks {
	h := FistLandmarks()
	extendedFinger(&h, IndexMCP, 0.55, 0.68, 0.56, 0.35)
	extendedFinger(&h, MiddleMCP, 0.50, 0.66, 0.50, 0.33)
	return h
}

// OpenPalmLandmarks returns a hand with all five fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	h := HandLandmarks{Handedness: "Right", Score: 0.95}
	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8}

	// Thumb extended to the side, tip outside the IP joint.
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	h.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	extendedFinger(&h, IndexMCP, 0.55, 0.68, 0.58, 0.35)
	extendedFinger(&h, MiddleMCP, 0.50, 0.66, 0.50, 0.28)
	extendedFinger(&h, RingMCP, 0.45, 0.68, 0.42, 0.35)
	extendedFinger(&h, PinkyMCP, 0.40, 0.70, 0.34, 0.42)
	return h
}
