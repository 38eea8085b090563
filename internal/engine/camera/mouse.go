package camera

// MouseTracker turns absolute cursor samples into look deltas.
// The first sample after creation or Reset only sets the reference point,
// so capturing the cursor does not make the camera jump.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Sample records a cursor position and returns the offset from the previous one.
// dy is reversed because screen Y grows downward.
func (m *MouseTracker) Sample(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset forgets the reference point.
func (m *MouseTracker) Reset() {
	m.primed = false
}
