package core

import "github.com/hubastard/pixeldemo/engine/colors"

// App defines the demo/application hooks, called in frame order.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnEvent(e *Engine, ev Event) // every polled event, before the engine reacts to it
	OnRender(e *Engine)          // between Clear and Present
	OnUpdate(e *Engine)          // after Present, once per frame
	OnShutdown(e *Engine)        // before the renderer and window are released
}

// Window abstraction.
type Window interface {
	PollEvents() // platform emits pending events via the event callback
	SwapBuffers()
	FramebufferSize() (int, int)
	SetEventCallback(cb func(Event))
	Destroy() // releases the window and terminates the subsystem
}

// Renderer abstraction. Coordinates are pixels, origin top-left.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	DrawPoint(x, y int, c colors.Color)
	FillRect(r Rect, c colors.Color)
	Present()
	Shutdown()
}

type Point struct{ X, Y int }

type Rect struct{ X, Y, W, H int }

// Event model.
type Event interface{ isEvent() }

// EventQuit is delivered when the platform asks the application to terminate
// (window close button, SDL_QUIT).
type EventQuit struct{}

func (EventQuit) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
}

// State of the frame loop. StateStopped is terminal.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
