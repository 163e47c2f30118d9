package action

import (
	"fmt"
	"log"

	"github.com/ayusman/mudra/internal/gesture"
)

// ScrollStep is the scroll amount issued per scroll gesture.
const ScrollStep = 60

// Hotkey chords bound to the swipe gestures.
var (
	swipeLeftKeys  = []string{"ctrl", "a"} // select all
	swipeRightKeys = []string{"ctrl", "c"} // copy
)

// Dispatcher maps each classified gesture event to exactly one backend
// command, in emission order. Backend failures are logged and swallowed;
// a denied synthetic input must never take down the frame loop.
type Dispatcher struct {
	backend Backend
	onEvent func(gesture.Event)
}

// NewDispatcher creates a dispatcher for the given backend.
func NewDispatcher(backend Backend) *Dispatcher {
	return &Dispatcher{backend: backend}
}

// OnEvent registers a callback invoked for every dispatched event, after
// the backend call. Used for the event log, tray and live feed.
func (d *Dispatcher) OnEvent(fn func(gesture.Event)) {
	d.onEvent = fn
}

// Dispatch issues one backend command per event.
func (d *Dispatcher) Dispatch(events []gesture.Event) {
	for _, ev := range events {
		if err := d.dispatch(ev); err != nil {
			log.Printf("action %s ignored: %v", ev.Kind, err)
		}
		if d.onEvent != nil {
			d.onEvent(ev)
		}
	}
}

func (d *Dispatcher) dispatch(ev gesture.Event) error {
	switch ev.Kind {
	case gesture.KindMove:
		return d.backend.MoveCursor(ev.X, ev.Y)
	case gesture.KindLeftClick:
		return d.backend.Click(ButtonLeft)
	case gesture.KindDoubleClick:
		return d.backend.DoubleClick()
	case gesture.KindRightClick:
		return d.backend.Click(ButtonRight)
	case gesture.KindSwipeLeft:
		return d.backend.Hotkey(swipeLeftKeys...)
	case gesture.KindSwipeRight:
		return d.backend.Hotkey(swipeRightKeys...)
	case gesture.KindScrollUp:
		return d.backend.Scroll(ScrollStep)
	case gesture.KindScrollDown:
		return d.backend.Scroll(-ScrollStep)
	case gesture.KindPauseToggle:
		// State change only; there is no backend action to perform.
		log.Printf("pause toggled")
		return nil
	default:
		return fmt.Errorf("unknown gesture kind %d", ev.Kind)
	}
}
