// Package gldriver implements graphics.Driver on top of go-gl.
//
// The all-core profile is used so that entry points beyond the context's
// version load as nil instead of failing Init; graphics.Context decides
// what is usable from the reported version and extensions.
package gldriver

import (
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/richinsley/glglue/graphics"
)

type Driver struct{}

func New() *Driver { return &Driver{} }

func (d *Driver) Init(getProcAddress func(name string) unsafe.Pointer) error {
	return gl.InitWithProcAddrFunc(getProcAddress)
}

func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Driver) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return exts
}

func (d *Driver) EnableDebugOutput(synchronous, errorsOnly bool, handler func(graphics.DebugMessage)) {
	gl.Enable(gl.DEBUG_OUTPUT)
	if synchronous {
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	if errorsOnly {
		gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, false)
		gl.DebugMessageControl(gl.DONT_CARE, gl.DEBUG_TYPE_ERROR, gl.DONT_CARE, 0, nil, true)
	}
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		handler(graphics.DebugMessage{
			ID:       id,
			Error:    gltype == gl.DEBUG_TYPE_ERROR,
			Severity: severity2go(severity),
			Message:  message,
		})
	}, nil)
}

func severity2go(s uint32) graphics.DebugSeverity {
	switch s {
	case gl.DEBUG_SEVERITY_HIGH:
		return graphics.SeverityHigh
	case gl.DEBUG_SEVERITY_MEDIUM:
		return graphics.SeverityMedium
	case gl.DEBUG_SEVERITY_LOW:
		return graphics.SeverityLow
	}
	return graphics.SeverityNotification
}

func (d *Driver) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Driver) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
