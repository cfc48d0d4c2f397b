package graphics

import "unsafe"

// DebugSeverity mirrors the GL_DEBUG_SEVERITY_* levels.
type DebugSeverity int

const (
	SeverityNotification DebugSeverity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s DebugSeverity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	}
	return "notification"
}

// DebugMessage is one message delivered through the GL debug output.
type DebugMessage struct {
	ID       uint32
	Error    bool // GL_DEBUG_TYPE_ERROR
	Severity DebugSeverity
	Message  string
}

// Driver is the slice of the GL API a Context needs: loading entry points,
// capability queries, debug output, and the per-frame calls.
type Driver interface {
	// Init loads every entry point through getProcAddress. It fails when a
	// required entry point cannot be resolved.
	Init(getProcAddress func(name string) unsafe.Pointer) error
	// Version returns the raw GL_VERSION string.
	Version() string
	Extensions() []string
	// EnableDebugOutput installs handler as the debug callback. With
	// errorsOnly set, every message type but GL_DEBUG_TYPE_ERROR is muted.
	EnableDebugOutput(synchronous, errorsOnly bool, handler func(DebugMessage))
	Viewport(x, y, width, height int)
	Clear(r, g, b, a float32)
}
