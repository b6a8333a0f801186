package core

import (
	"errors"

	"github.com/hubastard/pixeldemo/engine/colors"
)

// fakeWindow replays one scripted event batch per PollEvents call.
type fakeWindow struct {
	batches   [][]Event
	polls     int
	swaps     int
	destroyed int
	cb        func(Event)
	log       *[]string
}

func (w *fakeWindow) PollEvents() {
	*w.log = append(*w.log, "poll")
	if w.polls < len(w.batches) {
		for _, ev := range w.batches[w.polls] {
			w.cb(ev)
		}
	}
	w.polls++
}
func (w *fakeWindow) SwapBuffers()                    { w.swaps++ }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 800, 600 }
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) Destroy() {
	*w.log = append(*w.log, "destroy")
	w.destroyed++
}

type fakeRenderer struct {
	log      *[]string
	points   []Point
	rects    []Rect
	clears   []colors.Color
	presents int
	resizes  [][2]int
	shutdown int
}

func (r *fakeRenderer) Resize(w, h int) { r.resizes = append(r.resizes, [2]int{w, h}) }
func (r *fakeRenderer) Clear(c colors.Color) {
	*r.log = append(*r.log, "clear")
	r.clears = append(r.clears, c)
}
func (r *fakeRenderer) DrawPoint(x, y int, _ colors.Color) {
	r.points = append(r.points, Point{x, y})
}
func (r *fakeRenderer) FillRect(rect Rect, _ colors.Color) {
	*r.log = append(*r.log, "rect")
	r.rects = append(r.rects, rect)
}
func (r *fakeRenderer) Present() {
	*r.log = append(*r.log, "present")
	r.presents++
}
func (r *fakeRenderer) Shutdown() {
	*r.log = append(*r.log, "renderer-shutdown")
	r.shutdown++
}

// recordingApp draws one rect per frame and logs every hook.
type recordingApp struct {
	log    *[]string
	events []Event
}

func (a *recordingApp) OnStart(e *Engine) { *a.log = append(*a.log, "start") }
func (a *recordingApp) OnEvent(e *Engine, ev Event) {
	a.events = append(a.events, ev)
}
func (a *recordingApp) OnRender(e *Engine) {
	e.Renderer.FillRect(Rect{X: int(e.Frames()), Y: 0, W: 1, H: 1}, colors.Red)
}
func (a *recordingApp) OnUpdate(e *Engine)   { *a.log = append(*a.log, "update") }
func (a *recordingApp) OnShutdown(e *Engine) { *a.log = append(*a.log, "app-shutdown") }

type harness struct {
	log  []string
	win  *fakeWindow
	rend *fakeRenderer
	app  *recordingApp
}

func newHarness(batches ...[]Event) *harness {
	h := &harness{}
	h.win = &fakeWindow{batches: batches, log: &h.log}
	h.rend = &fakeRenderer{log: &h.log}
	h.app = &recordingApp{log: &h.log}
	return h
}

func (h *harness) newWindow(Config) (Window, error) { return h.win, nil }

func (h *harness) newRenderer(Window, Config) (Renderer, error) { return h.rend, nil }

var errNoDisplay = errors.New("no display")
