package core

import "testing"

func TestEventQueue_DrainStopsAndClears(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventResize{W: 1, H: 1})
	q.Push(EventQuit{})
	q.Push(EventResize{W: 2, H: 2})

	var seen []Event
	q.Drain(func(ev Event) bool {
		seen = append(seen, ev)
		_, quit := ev.(EventQuit)
		return !quit
	})

	if len(seen) != 2 {
		t.Fatalf("saw %d events, want 2", len(seen))
	}
	if _, ok := seen[1].(EventQuit); !ok {
		t.Errorf("second event = %T, want EventQuit", seen[1])
	}
	if q.Len() != 0 {
		t.Errorf("queue len after drain = %d, want 0", q.Len())
	}
}

func TestEventQueue_Empty(t *testing.T) {
	q := NewEventQueue()
	called := false
	q.Drain(func(Event) bool { called = true; return true })
	if called {
		t.Error("drain of empty queue called f")
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "running" || StateStopped.String() != "stopped" {
		t.Error("unexpected state names")
	}
	if State(42).String() != "unknown" {
		t.Error("unexpected name for invalid state")
	}
}
