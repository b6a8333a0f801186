//go:build sdl

package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/hubastard/pixeldemo/engine/core"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLWindow implements core.Window on SDL2. It owns the SDL renderer because
// SDL presents through the renderer rather than the window.
type SDLWindow struct {
	w    *sdl.Window
	r    *sdl.Renderer
	onEv func(core.Event)
}

// Must be called on main thread.
func NewSDLWindow(cfg core.Config, onEvent func(core.Event)) (*SDLWindow, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	rend, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}
	if info, err := rend.GetInfo(); err == nil {
		log.Printf("SDL: %s\n", info.Name)
	}

	return &SDLWindow{w: win, r: rend, onEv: onEvent}, nil
}

func (s *SDLWindow) emit(ev core.Event) {
	if s.onEv != nil {
		s.onEv(ev)
	}
}

// SDLRenderer exposes the renderer bound to this window.
func (s *SDLWindow) SDLRenderer() *sdl.Renderer { return s.r }

// core.Window impl
func (s *SDLWindow) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			s.emit(core.EventQuit{})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := s.FramebufferSize()
				s.emit(core.EventResize{W: w, H: h})
			}
		}
	}
}

func (s *SDLWindow) SwapBuffers() { s.r.Present() }

func (s *SDLWindow) FramebufferSize() (int, int) {
	w, h, err := s.r.GetOutputSize()
	if err != nil {
		ww, wh := s.w.GetSize()
		return int(ww), int(wh)
	}
	return int(w), int(h)
}

func (s *SDLWindow) SetEventCallback(cb func(core.Event)) { s.onEv = cb }

func (s *SDLWindow) Destroy() {
	s.r.Destroy()
	s.w.Destroy()
	sdl.Quit()
}
