// Package raster converts simple shapes into individual pixel writes.
package raster

import (
	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
)

// Plotter receives one call per rasterized pixel. core.Renderer satisfies it.
type Plotter interface {
	DrawPoint(x, y int, c colors.Color)
}

// PlotterFunc adapts a function to Plotter.
type PlotterFunc func(x, y int, c colors.Color)

func (f PlotterFunc) DrawPoint(x, y int, c colors.Color) { f(x, y, c) }

// FillCircle plots every pixel of the filled disk of radius r around center,
// scanning the bounding box with dx outer and dy inner. Pixels are not clipped.
// r == 0 plots only the center; r < 0 plots nothing.
func FillCircle(p Plotter, c colors.Color, center core.Point, r int) {
	rr := r * r
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy <= rr {
				p.DrawPoint(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// CirclePoints returns the pixels FillCircle would plot, in the same order.
func CirclePoints(center core.Point, r int) []core.Point {
	var pts []core.Point
	FillCircle(PlotterFunc(func(x, y int, _ colors.Color) {
		pts = append(pts, core.Point{X: x, Y: y})
	}), colors.White, center, r)
	return pts
}
