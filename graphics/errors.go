package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleOpenGL matches any *IncompatibleOpenGLError.
	ErrIncompatibleOpenGL = errors.New("incompatible OpenGL")
	// ErrContextLost is reported when the platform can no longer present.
	ErrContextLost = errors.New("context lost")
	// ErrAlreadySwapped is returned by a second Finish on the same Frame.
	ErrAlreadySwapped = errors.New("buffers already swapped")
)

// IncompatibleOpenGLError is returned by NewContext when the OpenGL
// implementation behind a backend does not meet the minimum requirements.
type IncompatibleOpenGLError struct {
	Reason string
	Err    error
}

func (e *IncompatibleOpenGLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not create OpenGL context: %s: %v", e.Reason, e.Err)
	}
	return "could not create OpenGL context: " + e.Reason
}

func (e *IncompatibleOpenGLError) Is(target error) bool { return target == ErrIncompatibleOpenGL }

func (e *IncompatibleOpenGLError) Unwrap() error { return e.Err }

// SwapBuffersError describes a failed buffer swap. Kind is ErrContextLost or
// ErrAlreadySwapped; Err carries the platform cause, if any.
type SwapBuffersError struct {
	Kind error
	Err  error
}

func (e *SwapBuffersError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swap buffers: %v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("swap buffers: %v", e.Kind)
}

func (e *SwapBuffersError) Is(target error) bool { return target == e.Kind }

func (e *SwapBuffersError) Unwrap() error { return e.Err }
