package main

import (
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gobuffalo/packr"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/glstream/core"
	"github.com/devblok/glstream/device"
	"github.com/devblok/glstream/gfx"
	"github.com/devblok/glstream/glr"
	"github.com/devblok/glstream/model"
	"github.com/devblok/glstream/pak"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	log     = logrus.New()
	shaders = packr.NewBox("./shaders")
)

var defaults = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
	},
	Renderer: core.RendererConfiguration{
		Strategy:     "ring",
		ScreenWidth:  800,
		ScreenHeight: 600,
	},
}

func newWindow(cfg core.RendererConfiguration) *sdl.Window {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window, err := sdl.CreateWindow("glstream",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL)
	if err != nil {
		panic(err)
	}
	return window
}

// loadOverlay reads a static line-loop overlay from a pak archive, raw
// little-endian vec2 floats under the "overlay" entry.
func loadOverlay(path string) (glr.VertexComponent, int32) {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Fatal("could not open overlay pak")
	}
	defer f.Close()

	archive, err := pak.Open(f)
	if err != nil {
		log.WithError(err).Fatal("could not read overlay pak")
	}
	raw, err := archive.ReadAll("overlay")
	if err != nil {
		log.WithError(err).Fatal("overlay entry missing")
	}

	return glr.VertexComponent{
		Data: raw,
		Attributes: []glr.VertexAttribute{
			{Index: 0, Size: 2, Type: gfx.Float32},
		},
	}, int32(len(raw) / 8)
}

func main() {
	overlayPak := flag.String("pak", "", "path to a pak archive with a static overlay to draw")
	flag.Parse()

	configuration, err := core.FromEnv(defaults)
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}
	strategy, err := configuration.Renderer.StreamingStrategy()
	if err != nil {
		log.WithField("strategy", configuration.Renderer.Strategy).Fatal("invalid renderer")
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window := newWindow(configuration.Renderer)
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		panic(err)
	}
	defer sdl.GLDeleteContext(glContext)

	dev, err := device.NewOpenGL()
	if err != nil {
		panic(err)
	}
	dev = device.NewChecked(dev, log)
	log.WithField("strategy", strategy).Info("renderer initialized")

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	program := buildProgram()
	colorUniform := gl.GetUniformLocation(program, gl.Str("uColor\x00"))
	projUniform := gl.GetUniformLocation(program, gl.Str("uProjection\x00"))

	var overlay glr.VertexComponent
	var overlayCount int32
	if *overlayPak != "" {
		overlay, overlayCount = loadOverlay(*overlayPak)
	}

	ctx := glr.NewContext(dev, strategy)
	vao := glr.NewVertexArray(dev)

	timeSvc := core.NewTime(configuration.Time)
	defer timeSvc.Stop()
	exitC := make(chan struct{}, 2)
	start := time.Now()

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-timeSvc.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Type != sdl.KEYDOWN {
						continue
					}
					switch et.Keysym.Sym {
					case sdl.K_ESCAPE:
						exitC <- struct{}{}
						continue EventLoop
					case sdl.K_1:
						ctx.SetStrategy(glr.StrategyRingBuffer)
						log.Info("switched to ring buffer streaming")
					case sdl.K_2:
						ctx.SetStrategy(glr.StrategyBufferPool)
						log.Info("switched to buffer pool streaming")
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			drawFrame(ctx, vao, program, colorUniform, projUniform,
				float32(time.Since(start).Seconds()), overlay, overlayCount)
			window.GLSwap()
		}
	}

	ctx.Release()
	vao.Release()
}

func drawFrame(ctx *glr.Context, vao *glr.VertexArray, program uint32, colorUniform, projUniform int32, elapsed float32, overlay glr.VertexComponent, overlayCount int32) {
	gl.ClearColor(0.08, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(program)
	projection := model.Projection()
	gl.UniformMatrix4fv(projUniform, 1, false, &projection[0])

	phase := elapsed * 0.8

	gl.Uniform4f(colorUniform, 0.3, 0.5, 0.9, 1)
	grid, gridCount := model.LineGrid(12, 9, phase)
	mustDraw(ctx.DrawArrays(vao, gfx.Lines, 0, gridCount, []glr.VertexComponent{grid}))

	gl.Uniform4f(colorUniform, 1, 1, 1, 1)
	gl.PointSize(3)
	points, pointCount := model.PointCloud(256, phase)
	mustDraw(ctx.DrawArrays(vao, gfx.Points, 0, pointCount, []glr.VertexComponent{points}))

	// The ribbon is an indexed mesh; the ring streamer rejects element
	// data, so fall back to the unrolled triangle list there.
	gl.Uniform4f(colorUniform, 0.9, 0.4, 0.2, 0.6)
	if ctx.Strategy() == glr.StrategyBufferPool {
		ribbon, elements := model.Ribbon(24, -phase)
		mustDraw(ctx.DrawElements(vao, gfx.Triangles, 0, elements.Count, []glr.VertexComponent{ribbon}, elements))
	} else {
		ribbon, count := model.RibbonStrip(24, -phase)
		mustDraw(ctx.DrawArrays(vao, gfx.Triangles, 0, count, []glr.VertexComponent{ribbon}))
	}

	if overlayCount > 0 {
		gl.Uniform4f(colorUniform, 0.2, 0.9, 0.4, 1)
		mustDraw(ctx.DrawArrays(vao, gfx.LineLoop, 0, overlayCount, []glr.VertexComponent{overlay}))
	}
}

func mustDraw(err error) {
	if err != nil {
		log.WithError(err).Fatal("draw submission failed")
	}
}

func buildProgram() uint32 {
	vertex := compileShader(gl.VERTEX_SHADER, shaders.String("basic.vert"))
	fragment := compileShader(gl.FRAGMENT_SHADER, shaders.String("basic.frag"))

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		log.Fatalf("program link error: %s", infoLog)
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program
}

func compileShader(shaderType uint32, source string) uint32 {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		log.Fatalf("shader compile error: %s", infoLog)
	}
	return shader
}
