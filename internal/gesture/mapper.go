package gesture

// PointerMapper converts a raw index-fingertip position inside the active
// rectangle into a smoothed, mirrored, clamped screen coordinate.
type PointerMapper struct {
	cfg     Config
	screenW int
	screenH int
	plocX   float64
	plocY   float64
}

// NewPointerMapper creates a mapper for the given screen dimensions. The
// previous-location state starts at the origin and is carried for the whole
// session.
func NewPointerMapper(cfg Config, screenW, screenH int) *PointerMapper {
	return &PointerMapper{cfg: cfg, screenW: screenW, screenH: screenH}
}

// Map translates a fingertip position to a screen coordinate.
//
// The fingertip is interpolated from the active rectangle onto the full
// screen, smoothed against the previous mapped position, and mirrored on X
// so the pointer tracks the mirrored camera view. The previous-location
// state is updated exactly once, after the new position is computed.
func (m *PointerMapper) Map(x1, y1 float64) (int, int) {
	cfg := m.cfg
	x3 := interp(x1, float64(cfg.FrameMargin), float64(cfg.FrameWidth-cfg.FrameMargin), 0, float64(m.screenW))
	y3 := interp(y1, float64(cfg.FrameMargin), float64(cfg.FrameHeight-cfg.FrameMargin), 0, float64(m.screenH))

	clocX := m.plocX + (x3-m.plocX)/cfg.Smoothing
	clocY := m.plocY + (y3-m.plocY)/cfg.Smoothing

	sx := clampInt(int(float64(m.screenW)-clocX), 0, m.screenW-1)
	sy := clampInt(int(clocY), 0, m.screenH-1)

	m.plocX = clocX
	m.plocY = clocY

	return sx, sy
}

// interp maps v from [lo, hi] to [outLo, outHi], clamping v to the input
// range first.
func interp(v, lo, hi, outLo, outHi float64) float64 {
	if hi <= lo {
		return outLo
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return outLo + (v-lo)/(hi-lo)*(outHi-outLo)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
