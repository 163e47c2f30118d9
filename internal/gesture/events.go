// Package gesture turns per-frame hand observations into classified pointer
// and mouse-action events.
package gesture

import "math"

// Finger indices in anatomical order. A FingerVector is always addressed
// with these constants.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerVector records which fingers are extended, ordered thumb to pinky.
type FingerVector [NumFingers]bool

// Count returns the number of extended fingers.
func (v FingerVector) Count() int {
	n := 0
	for _, up := range v {
		if up {
			n++
		}
	}
	return n
}

// IsFist reports whether no finger is extended.
func (v FingerVector) IsFist() bool {
	return v.Count() == 0
}

// IndexOnly reports whether the index finger is the only extended finger.
func (v FingerVector) IndexOnly() bool {
	return v[Index] && v.Count() == 1
}

// AllExtended reports whether all five fingers are extended (open palm).
func (v FingerVector) AllExtended() bool {
	return v.Count() == NumFingers
}

// Kind identifies the type of a classified gesture event.
type Kind int

const (
	KindMove Kind = iota
	KindLeftClick
	KindDoubleClick
	KindRightClick
	KindSwipeLeft
	KindSwipeRight
	KindScrollUp
	KindScrollDown
	KindPauseToggle
)

var kindNames = map[Kind]string{
	KindMove:        "move",
	KindLeftClick:   "left-click",
	KindDoubleClick: "double-click",
	KindRightClick:  "right-click",
	KindSwipeLeft:   "swipe-left",
	KindSwipeRight:  "swipe-right",
	KindScrollUp:    "scroll-up",
	KindScrollDown:  "scroll-down",
	KindPauseToggle: "pause-toggle",
}

// String returns the wire name of the event kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single classified gesture. X and Y carry the mapped screen
// coordinate for KindMove and are zero for every other kind.
type Event struct {
	Kind Kind
	X    int
	Y    int
}

// Point is a 2D landmark position in frame-pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Observation is one frame's worth of detector output fed to the classifier.
// Landmark positions are only valid for the frame they were observed in.
type Observation struct {
	Fingers   FingerVector
	ThumbTip  Point
	IndexTip  Point
	MiddleTip Point
}
