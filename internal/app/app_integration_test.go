package app

import (
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/action"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

func testApp(t *testing.T, s *store.Store) (*App, *action.MockBackend, *detector.MockDetector) {
	t.Helper()

	backend := action.NewMockBackend()
	a := New(Config{
		Source:          "0",
		Store:           s,
		MotionThreshold: 1.0,
		Gesture:         gesture.DefaultConfig(),
	}, backend)

	mock := detector.NewMockDetector()
	a.SetDetector(mock)
	a.SetCamera(capture.NewMockCamera(nil, false))

	return a, backend, mock
}

func testFrame(t *testing.T) *gocv.Mat {
	t.Helper()
	frame := gocv.NewMatWithSize(360, 480, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { frame.Close() })
	return &frame
}

func TestApp_ProcessFrame_PointingMovesCursor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a, backend, mock := testApp(t, nil)
	mock.SetHands([]detector.HandLandmarks{detector.PointingLandmarks()})

	frame := testFrame(t)
	state := a.ProcessFrame(frame, 15)

	if !state.HasHand {
		t.Fatal("expected hand in HUD state")
	}
	if state.Paused {
		t.Error("expected unpaused state")
	}

	if len(backend.Calls) != 1 {
		t.Fatalf("expected 1 backend call, got %d: %v", len(backend.Calls), backend.Calls)
	}
	if backend.Calls[0].Op != "move" {
		t.Errorf("expected move call, got %s", backend.Calls[0].Op)
	}
}

func TestApp_ProcessFrame_VSignClicks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a, backend, mock := testApp(t, nil)
	mock.SetHands([]detector.HandLandmarks{detector.VSignLandmarks()})

	frame := testFrame(t)
	a.ProcessFrame(frame, 15)

	if len(backend.Calls) != 1 {
		t.Fatalf("expected 1 backend call, got %d: %v", len(backend.Calls), backend.Calls)
	}
	call := backend.Calls[0]
	if call.Op != "click" || call.Button != action.ButtonLeft {
		t.Errorf("expected left click, got %+v", call)
	}
}

func TestApp_ProcessFrame_NoHandNoCommands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a, backend, mock := testApp(t, nil)
	mock.SetHands(nil)

	frame := testFrame(t)
	state := a.ProcessFrame(frame, 15)

	if state.HasHand {
		t.Error("expected no hand in HUD state")
	}
	if len(backend.Calls) != 0 {
		t.Errorf("expected no backend calls, got %v", backend.Calls)
	}
}

func TestApp_RecordsDispatchedActions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	a, _, mock := testApp(t, s)
	mock.SetHands([]detector.HandLandmarks{detector.VSignLandmarks()})

	var seen []gesture.Event
	a.OnGesture(func(e gesture.Event) {
		seen = append(seen, e)
	})

	frame := testFrame(t)
	a.ProcessFrame(frame, 15)

	if len(seen) != 1 || seen[0].Kind != gesture.KindLeftClick {
		t.Fatalf("expected left-click callback, got %v", seen)
	}
	if a.LastGesture() != "left-click" {
		t.Errorf("LastGesture() = %q, want left-click", a.LastGesture())
	}

	events, err := s.Events().ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 1 || events[0].Kind != "left-click" {
		t.Errorf("expected one recorded left-click, got %v", events)
	}
}

func TestApp_ProcessFrame_MovesNotRecorded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	a, _, mock := testApp(t, s)
	mock.SetHands([]detector.HandLandmarks{detector.PointingLandmarks()})

	frame := testFrame(t)
	a.ProcessFrame(frame, 15)

	events, err := s.Events().ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected moves to be skipped, got %v", events)
	}
	if a.LastGesture() != "" {
		t.Errorf("LastGesture() = %q, want empty", a.LastGesture())
	}
}

func TestApp_EnabledToggle(t *testing.T) {
	a, _, _ := testApp(t, nil)

	if !a.IsEnabled() {
		t.Error("expected app enabled by default")
	}

	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("expected app disabled after SetEnabled(false)")
	}
}

func TestApp_FistHoldPausesPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a, backend, mock := testApp(t, nil)
	mock.SetHands([]detector.HandLandmarks{detector.FistLandmarks()})

	frame := testFrame(t)

	// A single fist frame arms the hold but must not toggle yet.
	state := a.ProcessFrame(frame, 15)
	if state.Paused {
		t.Fatal("expected no pause before the hold elapses")
	}
	if len(backend.Calls) != 0 {
		t.Errorf("expected no backend calls from a fist, got %v", backend.Calls)
	}
}
