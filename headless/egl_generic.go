//go:build !linux || !cgo

package headless

import (
	"fmt"
)

func NewHeadless(width, height int) (Surface, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
