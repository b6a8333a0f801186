package glbackend

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
)

// RendererGL draws pixel-space points and filled rects through a single
// streaming vertex buffer. Consecutive primitives of the same kind are batched;
// a change of kind flushes, so submission order is preserved on screen.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	uScreen int32

	width, height int // logical surface size, pixels
	batch         batch
	stats         Statistics
}

// NewRendererGL needs a current GL context on the calling thread.
func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, width: cfg.Width, height: cfg.Height, batch: newBatch()}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("compile shader program: %w", err)
	}
	r.uScreen = gl.GetUniformLocation(r.program, gl.Str("uScreen\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	const stride = vStride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	log.Printf("GL: last frame %d draw calls, %d points, %d rects\n", r.stats.DrawCalls, r.stats.Points, r.stats.Rects)
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize sets the viewport to the framebuffer size. Projection stays in
// logical window pixels; points grow with the framebuffer scale so one
// logical pixel stays fully covered on HiDPI framebuffers.
func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.PointSize(pointScale(w, h, r.width, r.height))
}

func (r *RendererGL) Clear(c colors.Color) {
	r.batch.reset()
	r.stats = Statistics{}
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawPoint(x, y int, c colors.Color) {
	if r.batch.mode != gl.POINTS {
		r.flush()
		r.batch.mode = gl.POINTS
	}
	r.batch.point(x, y, c)
	r.stats.Points++
}

func (r *RendererGL) FillRect(rect core.Rect, c colors.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if r.batch.mode != gl.TRIANGLES {
		r.flush()
		r.batch.mode = gl.TRIANGLES
	}
	r.batch.rect(rect, c)
	r.stats.Rects++
}

func (r *RendererGL) Present() {
	r.flush()
	r.win.SwapBuffers()
}

func (r *RendererGL) flush() {
	n := r.batch.vertexCount()
	if n == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.uScreen, float32(r.width), float32(r.height))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// Orphan and refill; the buffer is rewritten every flush.
	gl.BufferData(gl.ARRAY_BUFFER, len(r.batch.verts)*4, gl.Ptr(r.batch.verts), gl.STREAM_DRAW)
	gl.DrawArrays(r.batch.mode, 0, int32(n))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.stats.DrawCalls++

	r.batch.reset()
}

// --- Shader utilities ---

// Pixel coordinates (origin top-left, y down) to NDC.
const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
uniform vec2 uScreen;
out vec4 vColor;
void main() {
    vColor = aColor;
    vec2 ndc = aPos / uScreen * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;
void main() {
    FragColor = vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
