// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/internal/engine/shader"
	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	LineWidth  float32
}

const (
	floatsPerVertex = 6 // position (x, y, z) + color (r, g, b)
	colorOffset     = 3 // floats before the color in each vertex
)

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vertexColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor, 1.0);
}
`

// Renderer batches coloured line segments and draws them once per frame.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32

	// Interleaved vertices queued since Begin
	batch     []float32
	capacity  int // VBO size in floats
	lastDrawn int // vertices drawn by the previous End
}

// New creates a new renderer. A nil logger disables logging.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config: cfg,
		log:    log,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	if cfg.LineWidth > 0 {
		// Core profiles only guarantee 1.0; wider values may be ignored.
		gl.LineWidth(cfg.LineWidth)
	}
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(lineVertexShader, lineFragmentShader, "uViewProj")
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(colorOffset*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	log.Debug("line renderer created",
		zap.Uint32("program", r.program.ID),
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.batch = r.batch[:0]
}

// Lines queues line segments given as consecutive [x, y, z] endpoint pairs,
// all drawn in one colour.
func (r *Renderer) Lines(positions []float32, color [3]float32) {
	r.batch = AppendColored(r.batch, positions, color)
}

// End uploads the queued lines and draws them with the given view-projection.
func (r *Renderer) End(viewProj math.Mat4) {
	count := len(r.batch) / floatsPerVertex
	r.lastDrawn = count
	if count == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(r.batch) > r.capacity {
		r.capacity = len(r.batch)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*4, unsafe.Pointer(&r.batch[0]), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.batch)*4, unsafe.Pointer(&r.batch[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINES, 0, int32(count))
	gl.BindVertexArray(0)
}

// LastDrawn returns the vertex count of the previous frame.
func (r *Renderer) LastDrawn() int {
	return r.lastDrawn
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// AppendColored interleaves a colour after every [x, y, z] position.
// Trailing floats that do not form a whole position are ignored.
func AppendColored(dst, positions []float32, color [3]float32) []float32 {
	for i := 0; i+3 <= len(positions); i += 3 {
		dst = append(dst,
			positions[i], positions[i+1], positions[i+2],
			color[0], color[1], color[2],
		)
	}
	return dst
}
