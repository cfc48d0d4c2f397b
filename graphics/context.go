package graphics

import (
	"fmt"
	"log"
	"sort"
	"sync/atomic"
)

// DebugCallbackBehavior selects what NewContext does with GL debug output.
type DebugCallbackBehavior int

const (
	// DebugIgnore leaves debug output disabled.
	DebugIgnore DebugCallbackBehavior = iota
	// DebugMessageOnError logs messages of type GL_DEBUG_TYPE_ERROR only.
	DebugMessageOnError
	// DebugPrintAll logs every message.
	DebugPrintAll
)

func (b DebugCallbackBehavior) String() string {
	switch b {
	case DebugMessageOnError:
		return "error"
	case DebugPrintAll:
		return "all"
	}
	return "ignore"
}

// DebugHandler receives GL debug messages.
type DebugHandler func(DebugMessage)

type contextConfig struct {
	minimums    map[API]Version
	logger      *log.Logger
	handler     DebugHandler
	synchronous bool
}

// ContextOption tunes NewContext.
type ContextOption func(*contextConfig)

// WithMinimumVersion replaces the minimum accepted version for v.API.
func WithMinimumVersion(v Version) ContextOption {
	return func(c *contextConfig) { c.minimums[v.API] = v }
}

// WithLogger sends context messages to l instead of log.Default().
func WithLogger(l *log.Logger) ContextOption {
	return func(c *contextConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDebugHandler routes every debug message to h, overriding the
// DebugCallbackBehavior passed to NewContext.
func WithDebugHandler(h DebugHandler, synchronous bool) ContextOption {
	return func(c *contextConfig) {
		c.handler = h
		c.synchronous = synchronous
	}
}

// Context is the negotiated OpenGL state behind a Backend. It is shared by
// the facade that created it and by every Frame in flight, and it keeps its
// backend alive until the last of them releases it.
type Context struct {
	backend      Backend
	driver       Driver
	checkCurrent bool
	version      Version
	extensions   map[string]struct{}
	logger       *log.Logger
	refs         atomic.Int32
}

// NewContext makes backend current, loads the GL entry points through it
// and checks the implementation against the minimum version. When
// checkCurrent is set the context re-binds the backend before work whenever
// it is not current; otherwise the caller keeps it current.
func NewContext(driver Driver, backend Backend, checkCurrent bool, behavior DebugCallbackBehavior, opts ...ContextOption) (*Context, error) {
	cfg := contextConfig{
		minimums: make(map[API]Version, len(DefaultMinimumVersions)),
		logger:   log.Default(),
	}
	for api, v := range DefaultMinimumVersions {
		cfg.minimums[api] = v
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	backend.MakeCurrent()

	if err := driver.Init(backend.GetProcAddress); err != nil {
		return nil, &IncompatibleOpenGLError{Reason: "failed to load OpenGL entry points", Err: err}
	}

	version, err := ParseVersion(driver.Version())
	if err != nil {
		return nil, &IncompatibleOpenGLError{Reason: "unrecognised version", Err: err}
	}
	if want := cfg.minimums[version.API]; !version.AtLeast(want) {
		return nil, &IncompatibleOpenGLError{Reason: fmt.Sprintf("%s is older than the required %s", version, want)}
	}

	c := &Context{
		backend:      backend,
		driver:       driver,
		checkCurrent: checkCurrent,
		version:      version,
		extensions:   make(map[string]struct{}),
		logger:       cfg.logger,
	}
	for _, ext := range driver.Extensions() {
		c.extensions[ext] = struct{}{}
	}
	c.refs.Store(1)
	if r, ok := backend.(Retainer); ok {
		r.Retain()
	}

	c.setupDebugOutput(behavior, cfg)
	c.logger.Printf("OpenGL context ready: %s, %d extensions", version, len(c.extensions))
	return c, nil
}

func (c *Context) setupDebugOutput(behavior DebugCallbackBehavior, cfg contextConfig) {
	handler, synchronous, errorsOnly := cfg.handler, cfg.synchronous, false
	if handler == nil {
		switch behavior {
		case DebugIgnore:
			return
		case DebugMessageOnError:
			errorsOnly = true
		}
		handler, synchronous = c.logDebugMessage, true
	}
	if !c.SupportsDebugOutput() {
		c.logger.Printf("Debug output not available on %s", c.version)
		return
	}
	c.driver.EnableDebugOutput(synchronous, errorsOnly, handler)
}

func (c *Context) logDebugMessage(m DebugMessage) {
	kind := "message"
	if m.Error {
		kind = "error"
	}
	c.logger.Printf("OpenGL debug %s %d (%s): %s", kind, m.ID, m.Severity, m.Message)
}

// SupportsDebugOutput reports whether glDebugMessageCallback is available.
func (c *Context) SupportsDebugOutput() bool {
	switch {
	case c.version.AtLeast(Version{API: DesktopGL, Major: 4, Minor: 3}):
		return true
	case c.version.AtLeast(Version{API: GLES, Major: 3, Minor: 2}):
		return true
	}
	return c.HasExtension("GL_KHR_debug")
}

func (c *Context) Backend() Backend { return c.backend }

func (c *Context) Driver() Driver { return c.driver }

func (c *Context) Version() Version { return c.version }

// Extensions returns the extension names in sorted order.
func (c *Context) Extensions() []string {
	exts := make([]string, 0, len(c.extensions))
	for ext := range c.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (c *Context) HasExtension(name string) bool {
	_, ok := c.extensions[name]
	return ok
}

func (c *Context) IsCurrent() bool { return c.backend.IsCurrent() }

// MakeCurrent binds the backend if current-context checking is enabled and
// it is not already current.
func (c *Context) MakeCurrent() {
	if c.checkCurrent && !c.backend.IsCurrent() {
		c.backend.MakeCurrent()
	}
}

func (c *Context) SwapBuffers() error {
	c.MakeCurrent()
	return c.backend.SwapBuffers()
}

func (c *Context) FramebufferDimensions() (int, int) {
	return c.backend.GetFramebufferDimensions()
}

// Retain adds a holder. Each Retain must be paired with a Release.
func (c *Context) Retain() { c.refs.Add(1) }

// Release drops a holder. The last release hands the backend reference back.
func (c *Context) Release() {
	n := c.refs.Add(-1)
	if n < 0 {
		panic("graphics: Context released more times than retained")
	}
	if n == 0 {
		if r, ok := c.backend.(Retainer); ok {
			r.Release()
		}
	}
}
