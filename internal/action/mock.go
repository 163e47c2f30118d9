package action

import "fmt"

// Call records one backend invocation for test assertions.
type Call struct {
	Op     string
	X, Y   int
	Button Button
	Amount int
	Keys   []string
}

// String renders a call compactly, which keeps test failure output legible.
func (c Call) String() string {
	switch c.Op {
	case "move":
		return fmt.Sprintf("move(%d,%d)", c.X, c.Y)
	case "click":
		return fmt.Sprintf("click(%s)", c.Button)
	case "scroll":
		return fmt.Sprintf("scroll(%d)", c.Amount)
	case "hotkey":
		return fmt.Sprintf("hotkey(%v)", c.Keys)
	default:
		return c.Op
	}
}

// MockBackend records calls instead of performing input, and can be primed
// to fail so dispatcher error handling is testable.
type MockBackend struct {
	Calls   []Call
	Err     error
	ScreenW int
	ScreenH int
}

// NewMockBackend creates a mock with a 1920x1080 screen.
func NewMockBackend() *MockBackend {
	return &MockBackend{ScreenW: 1920, ScreenH: 1080}
}

// ScreenSize returns the configured screen dimensions.
func (m *MockBackend) ScreenSize() (int, int) {
	return m.ScreenW, m.ScreenH
}

// MoveCursor records a move call.
func (m *MockBackend) MoveCursor(x, y int) error {
	m.Calls = append(m.Calls, Call{Op: "move", X: x, Y: y})
	return m.Err
}

// Click records a click call.
func (m *MockBackend) Click(button Button) error {
	m.Calls = append(m.Calls, Call{Op: "click", Button: button})
	return m.Err
}

// DoubleClick records a double-click call.
func (m *MockBackend) DoubleClick() error {
	m.Calls = append(m.Calls, Call{Op: "double-click"})
	return m.Err
}

// Scroll records a scroll call.
func (m *MockBackend) Scroll(amount int) error {
	m.Calls = append(m.Calls, Call{Op: "scroll", Amount: amount})
	return m.Err
}

// Hotkey records a hotkey call.
func (m *MockBackend) Hotkey(keys ...string) error {
	m.Calls = append(m.Calls, Call{Op: "hotkey", Keys: keys})
	return m.Err
}

// Reset clears recorded calls.
func (m *MockBackend) Reset() {
	m.Calls = nil
}
