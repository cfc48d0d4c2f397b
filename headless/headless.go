// Package headless provides a graphics.Backend backed by an EGL pbuffer, for
// rendering on machines without a window system.
package headless

import (
	"strings"

	"github.com/richinsley/glglue/graphics"
)

// Surface is an offscreen context and its pbuffer.
type Surface interface {
	graphics.Backend
	graphics.Retainer
	// DisplayIndex always fails: a pbuffer is not on any display.
	DisplayIndex() (int, error)
}

func validProcName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\x00")
}
