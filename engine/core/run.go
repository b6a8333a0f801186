package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Engine owns the window, renderer, event queue and loop state for one run.
type Engine struct {
	Window   Window
	Renderer Renderer

	app    App
	cfg    Config
	events *EventQueue
	state  State
	frames uint64
	start  time.Time
	closed bool
}

// NewEngine creates the window and renderer and calls app.OnStart.
// Must be called on the main OS thread. On failure everything created so far
// is released.
func NewEngine(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) (*Engine, error) {
	win, err := newWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	e := &Engine{
		Window:   win,
		Renderer: rend,
		app:      app,
		cfg:      cfg,
		events:   NewEventQueue(),
		state:    StateRunning,
		start:    time.Now(),
	}
	win.SetEventCallback(e.events.Push)

	app.OnStart(e)
	return e, nil
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

func (e *Engine) State() State { return e.state }

// Frames reports how many frames have been rendered.
func (e *Engine) Frames() uint64 { return e.frames }

// RunFrame polls events, then clears, renders, presents and updates.
// A quit event stops the loop but the frame it arrived in is still drawn.
// It reports whether another frame should run.
func (e *Engine) RunFrame() bool {
	if e.state == StateStopped {
		return false
	}

	e.Window.PollEvents()
	e.events.Drain(e.handle)

	e.Renderer.Clear(e.cfg.ClearColor)
	e.app.OnRender(e)
	e.Renderer.Present()

	e.app.OnUpdate(e)
	e.frames++

	return e.state == StateRunning
}

func (e *Engine) handle(ev Event) bool {
	e.app.OnEvent(e, ev)
	switch v := ev.(type) {
	case EventQuit:
		e.state = StateStopped
		return false
	case EventResize:
		if v.W < 1 || v.H < 1 {
			return true
		}
		e.Renderer.Resize(v.W, v.H)
	}
	return true
}

// Shutdown releases the app, renderer and window, in that order. Safe to call twice.
func (e *Engine) Shutdown() {
	if e.closed {
		return
	}
	e.closed = true
	e.state = StateStopped

	e.app.OnShutdown(e)
	e.Renderer.Shutdown()
	e.Window.Destroy()
	log.Printf("Engine exit after %d frames (%s)", e.frames, e.Uptime().Round(time.Millisecond))
}

// Run wires the platform window + renderer and executes the main loop until quit.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	e, err := NewEngine(app, cfg, newWindow, newRenderer)
	if err != nil {
		return err
	}
	defer e.Shutdown()

	for e.RunFrame() {
	}
	return nil
}
