// Package glue binds a GLFW window and its OpenGL context to a
// graphics.Context.
//
// Build creates the window backend, negotiates a rendering context against
// it and returns a Facade holding both. The backend is shared by the Facade
// and the rendering context and is destroyed only once both have released
// it, so the context can never outlive the window it draws to.
//
// All calls must be made from the thread that owns the context, which for
// GLFW is the main thread.
package glue

import (
	"log"

	"github.com/richinsley/glglue/gldriver"
	"github.com/richinsley/glglue/glfwcontext"
	"github.com/richinsley/glglue/graphics"
	"github.com/richinsley/glglue/headless"
	"github.com/richinsley/glglue/options"
)

type backend interface {
	graphics.Backend
	graphics.Retainer
	DisplayIndex() (int, error)
}

var (
	newBackend = func(b *glfwcontext.WindowBuilder) (backend, error) {
		be, err := glfwcontext.New(b)
		if err != nil {
			return nil, err
		}
		return be, nil
	}
	newHeadless = func(width, height int) (backend, error) {
		return headless.NewHeadless(width, height)
	}
	newDriver = func() graphics.Driver { return gldriver.New() }
)

type config struct {
	behavior     graphics.DebugCallbackBehavior
	checkCurrent bool
	driver       graphics.Driver
	ctxOpts      []graphics.ContextOption
}

type Option func(*config)

// WithDebugBehavior overrides the default of logging GL errors only.
func WithDebugBehavior(b graphics.DebugCallbackBehavior) Option {
	return func(c *config) { c.behavior = b }
}

func WithDebugHandler(h graphics.DebugHandler, synchronous bool) Option {
	return func(c *config) { c.ctxOpts = append(c.ctxOpts, graphics.WithDebugHandler(h, synchronous)) }
}

func WithMinimumVersion(v graphics.Version) Option {
	return func(c *config) { c.ctxOpts = append(c.ctxOpts, graphics.WithMinimumVersion(v)) }
}

// WithCheckCurrent controls whether the context re-binds itself before work
// when it is not current. It defaults to true.
func WithCheckCurrent(check bool) Option {
	return func(c *config) { c.checkCurrent = check }
}

func WithDriver(d graphics.Driver) Option {
	return func(c *config) { c.driver = d }
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.ctxOpts = append(c.ctxOpts, graphics.WithLogger(l)) }
}

// FromOptions translates command line options into Build options.
func FromOptions(o *options.WindowOptions) ([]Option, error) {
	behavior, err := options.ParseDebugBehavior(*o.DebugBehavior)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithDebugBehavior(behavior),
		WithCheckCurrent(*o.CheckCurrent),
	}, nil
}

// Facade is the application handle on a window and its rendering context.
type Facade struct {
	backend backend
	context *graphics.Context
}

var _ graphics.Facade = (*Facade)(nil)

// Build creates an OpenGL window from b and negotiates a rendering context
// on it. It returns either a Facade or an error, never both. An OpenGL
// implementation below the minimum yields an error matching
// graphics.ErrIncompatibleOpenGL; a window or context GLFW cannot create
// yields a *glfwcontext.CreationError.
func Build(b *glfwcontext.WindowBuilder, opts ...Option) (*Facade, error) {
	be, err := newBackend(b)
	if err != nil {
		return nil, err
	}
	return build(be, opts)
}

// BuildHeadless is Build for an offscreen EGL pbuffer of the given size.
func BuildHeadless(width, height int, opts ...Option) (*Facade, error) {
	be, err := newHeadless(width, height)
	if err != nil {
		return nil, err
	}
	return build(be, opts)
}

func build(be backend, opts []Option) (*Facade, error) {
	cfg := config{
		behavior:     graphics.DebugMessageOnError,
		checkCurrent: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.driver == nil {
		cfg.driver = newDriver()
	}

	ctx, err := graphics.NewContext(cfg.driver, be, cfg.checkCurrent, cfg.behavior, cfg.ctxOpts...)
	if err != nil {
		be.Release()
		return nil, err
	}
	return &Facade{backend: be, context: ctx}, nil
}

// Draw starts a frame sized to the current framebuffer. The caller finishes
// it, which swaps buffers once.
func (f *Facade) Draw() *graphics.Frame {
	if f.context == nil {
		panic("glue: Draw on a closed Facade")
	}
	w, h := f.backend.GetFramebufferDimensions()
	return graphics.NewFrame(f.context, w, h)
}

// DisplayIndex returns the index of the display the window is on.
func (f *Facade) DisplayIndex() (int, error) {
	if f.backend == nil {
		panic("glue: DisplayIndex on a closed Facade")
	}
	return f.backend.DisplayIndex()
}

func (f *Facade) GetContext() *graphics.Context { return f.context }

func (f *Facade) Backend() graphics.Backend { return f.backend }

// Close drops the Facade's references. The window goes away once every
// frame still in flight has been finished. Close is idempotent.
func (f *Facade) Close() {
	if f.context == nil {
		return
	}
	f.context.Release()
	f.backend.Release()
	f.context, f.backend = nil, nil
}
