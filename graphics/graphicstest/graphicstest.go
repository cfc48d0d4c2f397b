// Package graphicstest provides in-memory graphics.Backend and
// graphics.Driver implementations for tests.
package graphicstest

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/glglue/graphics"
)

// Backend is a fake platform context. It is not safe for concurrent use,
// matching the single-thread contract of real backends.
type Backend struct {
	Width, Height int
	Current       bool
	Swaps         int
	MakeCurrents  int
	SwapErr       error
	Procs         map[string]unsafe.Pointer
	Refs          int
	Destroyed     bool
	Display       int
	DisplayErr    error
}

var _ graphics.Backend = (*Backend)(nil)
var _ graphics.Retainer = (*Backend)(nil)

// procTable gives fake entry points distinct non-nil addresses.
var procTable [4]byte

// NewBackend returns a backend with one reference and a few resolvable
// entry points.
func NewBackend(width, height int) *Backend {
	procs := make(map[string]unsafe.Pointer)
	for i, name := range []string{"glGetString", "glGetIntegerv", "glClear", "glViewport"} {
		procs[name] = unsafe.Pointer(&procTable[i])
	}
	return &Backend{Width: width, Height: height, Procs: procs, Refs: 1}
}

func (b *Backend) SwapBuffers() error {
	if b.SwapErr != nil {
		return b.SwapErr
	}
	b.Swaps++
	return nil
}

func (b *Backend) IsCurrent() bool { return b.Current }

func (b *Backend) MakeCurrent() {
	b.MakeCurrents++
	b.Current = true
}

func (b *Backend) GetProcAddress(name string) unsafe.Pointer { return b.Procs[name] }

func (b *Backend) GetFramebufferDimensions() (int, int) { return b.Width, b.Height }

func (b *Backend) DisplayIndex() (int, error) {
	if b.DisplayErr != nil {
		return -1, b.DisplayErr
	}
	return b.Display, nil
}

func (b *Backend) Retain() { b.Refs++ }

func (b *Backend) Release() {
	b.Refs--
	if b.Refs < 0 {
		panic("graphicstest: Backend released more times than retained")
	}
	if b.Refs == 0 {
		b.Destroyed = true
		b.Current = false
	}
}

// Driver is a fake GL implementation reporting VersionString.
type Driver struct {
	VersionString string
	Exts          []string
	// Required entry points; Init fails if the backend cannot resolve one.
	Required []string

	DebugEnabled bool
	Synchronous  bool
	ErrorsOnly   bool
	Handler      func(graphics.DebugMessage)

	Viewports [][4]int
	Clears    int
}

var _ graphics.Driver = (*Driver)(nil)

func NewDriver(version string, exts ...string) *Driver {
	return &Driver{
		VersionString: version,
		Exts:          exts,
		Required:      []string{"glGetString", "glGetIntegerv"},
	}
}

func (d *Driver) Init(getProcAddress func(string) unsafe.Pointer) error {
	for _, name := range d.Required {
		if getProcAddress(name) == nil {
			return fmt.Errorf("missing entry point %s", name)
		}
	}
	return nil
}

func (d *Driver) Version() string { return d.VersionString }

func (d *Driver) Extensions() []string { return d.Exts }

func (d *Driver) EnableDebugOutput(synchronous, errorsOnly bool, handler func(graphics.DebugMessage)) {
	d.DebugEnabled = true
	d.Synchronous = synchronous
	d.ErrorsOnly = errorsOnly
	d.Handler = handler
}

func (d *Driver) Viewport(x, y, width, height int) {
	d.Viewports = append(d.Viewports, [4]int{x, y, width, height})
}

func (d *Driver) Clear(r, g, b, a float32) { d.Clears++ }
