package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	options "github.com/richinsley/glglue/options"
)

// WindowBuilder describes the window New creates. It is consumed by New and
// not retained.
type WindowBuilder struct {
	title      string
	width      int
	height     int
	x, y       int
	resizable  bool
	hidden     bool
	borderless bool
	highDPI    bool
	major      int
	minor      int
	core       bool
	debug      bool
	share      *Backend
}

func NewWindowBuilder(title string, width, height int) *WindowBuilder {
	return &WindowBuilder{
		title:  title,
		width:  width,
		height: height,
		x:      -1,
		y:      -1,
		major:  3,
		minor:  3,
		core:   true,
	}
}

// FromOptions builds a WindowBuilder from command line options.
func FromOptions(o *options.WindowOptions) *WindowBuilder {
	b := NewWindowBuilder(*o.Title, *o.Width, *o.Height).
		ContextVersion(*o.GLMajor, *o.GLMinor)
	if *o.X >= 0 && *o.Y >= 0 {
		b.Position(*o.X, *o.Y)
	}
	if *o.Resizable {
		b.Resizable()
	}
	if *o.Hidden {
		b.Hidden()
	}
	if *o.HighDPI {
		b.HighDPI()
	}
	if *o.DebugContext {
		b.DebugContext()
	}
	b.core = *o.CoreProfile
	return b
}

func (b *WindowBuilder) Position(x, y int) *WindowBuilder {
	b.x, b.y = x, y
	return b
}

func (b *WindowBuilder) Resizable() *WindowBuilder {
	b.resizable = true
	return b
}

func (b *WindowBuilder) Hidden() *WindowBuilder {
	b.hidden = true
	return b
}

func (b *WindowBuilder) Borderless() *WindowBuilder {
	b.borderless = true
	return b
}

// HighDPI asks for a framebuffer at the display's native scale, so the
// drawable size may exceed the window size.
func (b *WindowBuilder) HighDPI() *WindowBuilder {
	b.highDPI = true
	return b
}

func (b *WindowBuilder) ContextVersion(major, minor int) *WindowBuilder {
	b.major, b.minor = major, minor
	return b
}

// CoreProfile requests a forward compatible core profile. It is the default;
// CompatibilityProfile undoes it.
func (b *WindowBuilder) CoreProfile() *WindowBuilder {
	b.core = true
	return b
}

func (b *WindowBuilder) CompatibilityProfile() *WindowBuilder {
	b.core = false
	return b
}

func (b *WindowBuilder) DebugContext() *WindowBuilder {
	b.debug = true
	return b
}

// Share makes the new context share objects with other's context.
func (b *WindowBuilder) Share(other *Backend) *WindowBuilder {
	b.share = other
	return b
}

type windowHintPair struct {
	hint  glfw.Hint
	value int
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// hints lists the GLFW window hints for b. The client API is always OpenGL.
func (b *WindowBuilder) hints() []windowHintPair {
	hints := []windowHintPair{
		{glfw.ClientAPI, glfw.OpenGLAPI},
		{glfw.ContextVersionMajor, b.major},
		{glfw.ContextVersionMinor, b.minor},
		{glfw.Resizable, glfwBool(b.resizable)},
		{glfw.Visible, glfwBool(!b.hidden)},
		{glfw.Decorated, glfwBool(!b.borderless)},
		{glfw.ScaleToMonitor, glfwBool(b.highDPI)},
		{glfw.CocoaRetinaFramebuffer, glfwBool(b.highDPI)},
		{glfw.OpenGLDebugContext, glfwBool(b.debug)},
	}
	// Profiles only exist from 3.2 on.
	if b.major > 3 || (b.major == 3 && b.minor >= 2) {
		if b.core {
			hints = append(hints,
				windowHintPair{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
				windowHintPair{glfw.OpenGLForwardCompatible, glfw.True})
		} else {
			hints = append(hints, windowHintPair{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
		}
	}
	return hints
}
