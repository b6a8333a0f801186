package main

import (
	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
	"github.com/hubastard/pixeldemo/engine/raster"
)

// Scene draws a white disk at the window center and a red square sliding
// right along y = rectY, wrapping back to rectStartX.
type Scene struct {
	X int // left edge of the square, in [rectStartX, rectEndX]
}

func NewScene() *Scene { return &Scene{X: rectStartX} }

// Advance moves the square one pixel and wraps it once it passes rectEndX.
func (s *Scene) Advance() {
	s.X++
	if s.X > rectEndX {
		s.X = rectStartX
	}
}

func (s *Scene) OnStart(e *core.Engine)                {}
func (s *Scene) OnEvent(e *core.Engine, ev core.Event) {}

func (s *Scene) OnRender(e *core.Engine) {
	raster.FillCircle(e.Renderer, colors.White, core.Point{X: screenW / 2, Y: screenH / 2}, circleRadius)
	e.Renderer.FillRect(core.Rect{X: s.X, Y: rectY, W: rectSize, H: rectSize}, colors.Red)
}

func (s *Scene) OnUpdate(e *core.Engine)   { s.Advance() }
func (s *Scene) OnShutdown(e *core.Engine) {}
