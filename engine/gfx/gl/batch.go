package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
)

// Vertex: pos2 + color4 => 6 floats
const vStride = 6

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	Points    int
	Rects     int
}

// pointScale is the GL point size that covers one logical pixel when a
// logical surface of lw x lh is rendered into a framebuffer of fw x fh.
// Never below 1.
func pointScale(fw, fh, lw, lh int) float32 {
	if lw < 1 || lh < 1 {
		return 1
	}
	s := max(float32(fw)/float32(lw), float32(fh)/float32(lh))
	if s < 1 {
		return 1
	}
	return s
}

// batch accumulates vertices of a single primitive kind (GL draw mode).
// It holds no GL state so it can be exercised without a context.
type batch struct {
	mode  uint32 // GL draw mode
	verts []float32
}

// newBatch starts in point mode, the first primitive the demo submits.
func newBatch() batch { return batch{mode: gl.POINTS} }

func (b *batch) reset() { b.verts = b.verts[:0] }

func (b *batch) vertexCount() int { return len(b.verts) / vStride }

// point emits one vertex at the pixel center so rasterization hits exactly (x, y).
func (b *batch) point(x, y int, c colors.Color) {
	b.vertex(float32(x)+0.5, float32(y)+0.5, c)
}

// rect emits two triangles covering [x, x+w) x [y, y+h).
func (b *batch) rect(r core.Rect, c colors.Color) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	b.vertex(x0, y0, c)
	b.vertex(x0, y1, c)
	b.vertex(x1, y0, c)
	b.vertex(x1, y0, c)
	b.vertex(x0, y1, c)
	b.vertex(x1, y1, c)
}

func (b *batch) vertex(x, y float32, c colors.Color) {
	b.verts = append(b.verts, x, y, c[0], c[1], c[2], c[3])
}
