//go:build sdl

package sdlbackend

import (
	"errors"

	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
	"github.com/veandco/go-sdl2/sdl"
)

// renderTarget is the window side of the SDL backend; platform.SDLWindow provides it.
type renderTarget interface {
	core.Window
	SDLRenderer() *sdl.Renderer
}

// RendererSDL implements core.Renderer on the SDL renderer owned by the window.
// Per-frame call errors are ignored.
type RendererSDL struct {
	win core.Window
	r   *sdl.Renderer
}

func NewRendererSDL(win core.Window, _ core.Config) (*RendererSDL, error) {
	t, ok := win.(renderTarget)
	if !ok {
		return nil, errors.New("sdl renderer requires an SDL window")
	}
	return &RendererSDL{win: win, r: t.SDLRenderer()}, nil
}

func (s *RendererSDL) setColor(c colors.Color) {
	r, g, b, a := c.RGBA8()
	s.r.SetDrawColor(r, g, b, a)
}

// Resize is a no-op; SDL tracks the output size itself.
func (s *RendererSDL) Resize(int, int) {}

func (s *RendererSDL) Clear(c colors.Color) {
	s.setColor(c)
	s.r.Clear()
}

func (s *RendererSDL) DrawPoint(x, y int, c colors.Color) {
	s.setColor(c)
	s.r.DrawPoint(int32(x), int32(y))
}

func (s *RendererSDL) FillRect(rect core.Rect, c colors.Color) {
	s.setColor(c)
	s.r.FillRect(&sdl.Rect{X: int32(rect.X), Y: int32(rect.Y), W: int32(rect.W), H: int32(rect.H)})
}

func (s *RendererSDL) Present() { s.win.SwapBuffers() }

// Shutdown is a no-op; the window destroys the SDL renderer it created.
func (s *RendererSDL) Shutdown() {}
