package graphics

import "unsafe"

// Backend is the set of operations a platform must provide for a Context to
// drive OpenGL through it.
//
// Implementations own exactly one native context and the surface it was
// created against. MakeCurrent, IsCurrent and SwapBuffers must agree with
// each other for that single context, and none of the methods may be called
// once the platform resources have been released.
type Backend interface {
	// SwapBuffers presents the back buffer.
	SwapBuffers() error
	// IsCurrent reports whether the context is current on the calling thread.
	IsCurrent() bool
	// MakeCurrent binds the context to the calling thread. It panics if the
	// platform refuses. Callers serialise access themselves.
	MakeCurrent()
	// GetProcAddress resolves a GL entry point. It returns nil when the
	// symbol is unknown and must only be called with the context current.
	GetProcAddress(name string) unsafe.Pointer
	// GetFramebufferDimensions returns the drawable size in pixels.
	GetFramebufferDimensions() (width, height int)
}

// Retainer is implemented by backends whose platform resources are reference
// counted. A Context retains its backend for as long as it lives.
type Retainer interface {
	Retain()
	Release()
}

// Facade is anything that hands out a negotiated Context.
type Facade interface {
	GetContext() *Context
}
