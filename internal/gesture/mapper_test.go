package gesture

import "testing"

const (
	testScreenW = 1920
	testScreenH = 1080
)

func testMapper() *PointerMapper {
	return NewPointerMapper(DefaultConfig(), testScreenW, testScreenH)
}

func TestPointerMapper_OutputAlwaysOnScreen(t *testing.T) {
	m := testMapper()

	// Sweep fingertip positions well outside the active rectangle in every
	// direction; the mapped coordinate must stay inside screen bounds.
	for x := -200.0; x <= 700; x += 50 {
		for y := -200.0; y <= 600; y += 50 {
			sx, sy := m.Map(x, y)
			if sx < 0 || sx >= testScreenW {
				t.Fatalf("Map(%v, %v) x = %d, out of [0,%d)", x, y, sx, testScreenW)
			}
			if sy < 0 || sy >= testScreenH {
				t.Fatalf("Map(%v, %v) y = %d, out of [0,%d)", x, y, sy, testScreenH)
			}
		}
	}
}

func TestPointerMapper_MirrorsX(t *testing.T) {
	// Hand moving right across the active rectangle must drive the pointer
	// left, because the camera view is mirrored.
	m := testMapper()
	prevX := -1
	for _, x1 := range []float64{120, 180, 240, 300, 360} {
		// Repeat each position so smoothing settles before comparing.
		var sx int
		for i := 0; i < 60; i++ {
			sx, _ = m.Map(x1, 180)
		}
		if prevX >= 0 && sx >= prevX {
			t.Fatalf("pointer x %d did not decrease (previous %d) as hand moved right", sx, prevX)
		}
		prevX = sx
	}
}

func TestPointerMapper_SmoothingConverges(t *testing.T) {
	m := testMapper()

	// Fingertip pinned at the active rectangle centre: the smoothed
	// position must approach the unsmoothed target monotonically.
	const x1, y1 = 240.0, 180.0
	wantX, wantY := testScreenW/2, testScreenH/2

	var lastDX, lastDY int
	first := true
	for i := 0; i < 40; i++ {
		sx, sy := m.Map(x1, y1)
		dxErr := abs(sx - wantX)
		dyErr := abs(sy - wantY)
		if !first && (dxErr > lastDX || dyErr > lastDY) {
			t.Fatalf("frame %d: error grew (dx %d->%d, dy %d->%d)", i, lastDX, dxErr, lastDY, dyErr)
		}
		lastDX, lastDY = dxErr, dyErr
		first = false
	}

	if lastDX > 2 || lastDY > 2 {
		t.Errorf("did not converge to target: residual error (%d, %d)", lastDX, lastDY)
	}
}

func TestPointerMapper_PreviousLocationCarries(t *testing.T) {
	cfg := DefaultConfig()
	m := NewPointerMapper(cfg, testScreenW, testScreenH)

	m.Map(380, 260) // far corner, pulls ploc away from origin
	if m.plocX == 0 && m.plocY == 0 {
		t.Fatal("previous location not updated after Map")
	}

	// A second call on the same input keeps moving toward the target from
	// the stored position rather than restarting from the origin.
	before := m.plocX
	m.Map(380, 260)
	if m.plocX <= before {
		t.Errorf("plocX = %v, want progress past %v", m.plocX, before)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
