package action

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
)

func TestDispatcher_EventCommandMapping(t *testing.T) {
	tests := []struct {
		name  string
		event gesture.Event
		want  Call
	}{
		{"move", gesture.Event{Kind: gesture.KindMove, X: 640, Y: 480}, Call{Op: "move", X: 640, Y: 480}},
		{"left click", gesture.Event{Kind: gesture.KindLeftClick}, Call{Op: "click", Button: ButtonLeft}},
		{"double click", gesture.Event{Kind: gesture.KindDoubleClick}, Call{Op: "double-click"}},
		{"right click", gesture.Event{Kind: gesture.KindRightClick}, Call{Op: "click", Button: ButtonRight}},
		{"swipe left selects all", gesture.Event{Kind: gesture.KindSwipeLeft}, Call{Op: "hotkey", Keys: []string{"ctrl", "a"}}},
		{"swipe right copies", gesture.Event{Kind: gesture.KindSwipeRight}, Call{Op: "hotkey", Keys: []string{"ctrl", "c"}}},
		{"scroll up", gesture.Event{Kind: gesture.KindScrollUp}, Call{Op: "scroll", Amount: ScrollStep}},
		{"scroll down", gesture.Event{Kind: gesture.KindScrollDown}, Call{Op: "scroll", Amount: -ScrollStep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := NewMockBackend()
			d := NewDispatcher(backend)

			d.Dispatch([]gesture.Event{tt.event})

			if len(backend.Calls) != 1 {
				t.Fatalf("got %d backend calls, want 1", len(backend.Calls))
			}
			if !reflect.DeepEqual(backend.Calls[0], tt.want) {
				t.Errorf("call = %v, want %v", backend.Calls[0], tt.want)
			}
		})
	}
}

func TestDispatcher_PauseToggleIssuesNoCommand(t *testing.T) {
	backend := NewMockBackend()
	d := NewDispatcher(backend)

	d.Dispatch([]gesture.Event{{Kind: gesture.KindPauseToggle}})

	if len(backend.Calls) != 0 {
		t.Errorf("got backend calls %v, want none for a pause toggle", backend.Calls)
	}
}

func TestDispatcher_PreservesEmissionOrder(t *testing.T) {
	backend := NewMockBackend()
	d := NewDispatcher(backend)

	d.Dispatch([]gesture.Event{
		{Kind: gesture.KindMove, X: 10, Y: 20},
		{Kind: gesture.KindLeftClick},
		{Kind: gesture.KindScrollUp},
	})

	wantOps := []string{"move", "click", "scroll"}
	if len(backend.Calls) != len(wantOps) {
		t.Fatalf("got %d calls, want %d", len(backend.Calls), len(wantOps))
	}
	for i, op := range wantOps {
		if backend.Calls[i].Op != op {
			t.Errorf("call %d = %s, want %s", i, backend.Calls[i].Op, op)
		}
	}
}

func TestDispatcher_BackendFailureDoesNotAbortFrame(t *testing.T) {
	backend := NewMockBackend()
	backend.Err = errors.New("synthetic input denied")
	d := NewDispatcher(backend)

	var seen []gesture.Kind
	d.OnEvent(func(ev gesture.Event) {
		seen = append(seen, ev.Kind)
	})

	// Every event in the frame must still be attempted and reported.
	d.Dispatch([]gesture.Event{
		{Kind: gesture.KindMove, X: 1, Y: 2},
		{Kind: gesture.KindLeftClick},
	})

	if len(backend.Calls) != 2 {
		t.Errorf("got %d backend calls, want 2 despite failures", len(backend.Calls))
	}
	if len(seen) != 2 {
		t.Errorf("got %d callback invocations, want 2", len(seen))
	}
}

func TestDispatcher_OnEventReceivesDispatchedEvents(t *testing.T) {
	backend := NewMockBackend()
	d := NewDispatcher(backend)

	var got []gesture.Event
	d.OnEvent(func(ev gesture.Event) {
		got = append(got, ev)
	})

	events := []gesture.Event{
		{Kind: gesture.KindMove, X: 5, Y: 6},
		{Kind: gesture.KindPauseToggle},
	}
	d.Dispatch(events)

	if !reflect.DeepEqual(got, events) {
		t.Errorf("callback events = %v, want %v", got, events)
	}
}
