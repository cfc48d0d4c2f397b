package glfwcontext

import (
	"errors"
	"fmt"
	"image"
	"log"
	"runtime"
	"strings"
	"sync/atomic"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/glglue/graphics"
)

// Stage names the construction step that failed.
type Stage int

const (
	StageWindow Stage = iota
	StageContext
)

// CreationError is returned by New when GLFW cannot produce the window or
// its OpenGL context.
type CreationError struct {
	Stage Stage
	Err   error
}

func (e *CreationError) Error() string {
	if e.Stage == StageContext {
		return fmt.Sprintf("could not create OpenGL context: %v", e.Err)
	}
	return fmt.Sprintf("could not create GLFW window: %v", e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

var errNoContext = errors.New("window has no OpenGL context")

// window is the part of *glfw.Window the backend uses.
type window interface {
	MakeContextCurrent()
	SwapBuffers()
	GetFramebufferSize() (int, int)
	GetPos() (int, int)
	SetPos(x, y int)
	GetSize() (int, int)
	GetAttrib(attrib glfw.Hint) int
	Monitor() monitor
	Destroy()
}

type monitor interface {
	GetPos() (int, int)
	GetVideoMode() *glfw.VidMode
}

type glfwWindow struct {
	*glfw.Window
}

// Monitor returns the monitor of a fullscreen window, nil otherwise.
func (w glfwWindow) Monitor() monitor {
	if m := w.GetMonitor(); m != nil {
		return m
	}
	return nil
}

// Platform entry points, replaced in tests.
var (
	defaultWindowHints = glfw.DefaultWindowHints
	windowHint         = glfw.WindowHint
	createWindow       = func(width, height int, title string, share window) (window, error) {
		var shared *glfw.Window
		if gw, ok := share.(glfwWindow); ok {
			shared = gw.Window
		}
		win, err := glfw.CreateWindow(width, height, title, nil, shared)
		if err != nil {
			return nil, err
		}
		return glfwWindow{win}, nil
	}
	currentContext = func() window {
		if w := glfw.GetCurrentContext(); w != nil {
			return glfwWindow{w}
		}
		return nil
	}
	detachCurrentContext = glfw.DetachCurrentContext
	getProcAddress       = glfw.GetProcAddress
	monitors             = func() []monitor {
		ms := glfw.GetMonitors()
		out := make([]monitor, len(ms))
		for i, m := range ms {
			out[i] = m
		}
		return out
	}
)

// Backend owns a GLFW window and the OpenGL context GLFW created with it.
// It implements graphics.Backend. It is reference counted: the window is
// destroyed when the last holder calls Release.
type Backend struct {
	window window
	refs   atomic.Int32
}

var _ graphics.Backend = (*Backend)(nil)
var _ graphics.Retainer = (*Backend)(nil)

// New creates an OpenGL window from b. The returned Backend holds one
// reference owned by the caller.
func New(b *WindowBuilder) (*Backend, error) {
	defaultWindowHints()
	for _, h := range b.hints() {
		windowHint(h.hint, h.value)
	}

	var share window
	if b.share != nil {
		share = b.share.window
	}
	win, err := createWindow(b.width, b.height, b.title, share)
	if err != nil {
		return nil, &CreationError{Stage: creationStage(err), Err: err}
	}
	if win.GetAttrib(glfw.ClientAPI) == glfw.NoAPI {
		win.Destroy()
		return nil, &CreationError{Stage: StageContext, Err: errNoContext}
	}
	if b.x >= 0 && b.y >= 0 {
		win.SetPos(b.x, b.y)
	}

	be := &Backend{window: win}
	be.refs.Store(1)
	fbw, fbh := win.GetFramebufferSize()
	log.Printf("GLFW window %q created: %dx%d, framebuffer %dx%d", b.title, b.width, b.height, fbw, fbh)
	return be, nil
}

// creationStage attributes a GLFW error to the context when GLFW reports
// that the requested API or version is unavailable.
func creationStage(err error) Stage {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case glfw.APIUnavailable, glfw.VersionUnavailable:
			return StageContext
		}
	}
	return StageWindow
}

// SwapBuffers presents the back buffer. GLFW reports failures by panicking
// with its error; those are returned as a *graphics.SwapBuffersError.
func (b *Backend) SwapBuffers() (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = &graphics.SwapBuffersError{Kind: graphics.ErrContextLost, Err: cause}
		}
	}()
	b.window.SwapBuffers()
	return nil
}

func (b *Backend) IsCurrent() bool {
	cur := currentContext()
	return cur != nil && cur == b.window
}

// MakeCurrent makes the window's context current on the calling thread.
// GLFW panics if that fails.
func (b *Backend) MakeCurrent() {
	b.window.MakeContextCurrent()
}

// GetProcAddress resolves an OpenGL entry point of the current context.
// Names GL could never export resolve to nil without asking GLFW.
func (b *Backend) GetProcAddress(name string) unsafe.Pointer {
	if name == "" || strings.ContainsAny(name, " \t\x00") {
		return nil
	}
	return getProcAddress(name)
}

func (b *Backend) GetFramebufferDimensions() (int, int) {
	return b.window.GetFramebufferSize()
}

// DisplayIndex returns the index into the monitor list of the display the
// window is on. A fullscreen window reports its own monitor; otherwise the
// display under the window centre wins, then the one with the largest
// overlap.
func (b *Backend) DisplayIndex() (int, error) {
	ms := monitors()
	if len(ms) == 0 {
		return -1, errors.New("no displays attached")
	}
	if fm := b.window.Monitor(); fm != nil {
		for i, m := range ms {
			if m == fm {
				return i, nil
			}
		}
	}

	x, y := b.window.GetPos()
	w, h := b.window.GetSize()
	win := image.Rect(x, y, x+w, y+h)
	centre := image.Pt(x+w/2, y+h/2)

	best, bestArea := -1, 0
	for i, m := range ms {
		mode := m.GetVideoMode()
		if mode == nil {
			continue
		}
		mx, my := m.GetPos()
		bounds := image.Rect(mx, my, mx+mode.Width, my+mode.Height)
		if centre.In(bounds) {
			return i, nil
		}
		if o := win.Intersect(bounds); !o.Empty() && o.Dx()*o.Dy() > bestArea {
			best, bestArea = i, o.Dx()*o.Dy()
		}
	}
	if best < 0 {
		return -1, fmt.Errorf("window at %d,%d is not on any display", x, y)
	}
	return best, nil
}

// Retain adds a holder.
func (b *Backend) Retain() { b.refs.Add(1) }

// Release drops a holder. The last release detaches the context if it is
// current and destroys the window together with its context.
func (b *Backend) Release() {
	n := b.refs.Add(-1)
	if n < 0 {
		panic("glfwcontext: Backend released more times than retained")
	}
	if n > 0 {
		return
	}
	if b.IsCurrent() {
		detachCurrentContext()
	}
	b.window.Destroy()
	log.Printf("GLFW window destroyed")
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// PollEvents processes pending window events so the window stays responsive.
func PollEvents() {
	glfw.PollEvents()
}
