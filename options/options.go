package options

import (
	"flag"
	"fmt"

	"github.com/richinsley/glglue/graphics"
)

type WindowOptions struct {
	Title         *string
	Width         *int
	Height        *int
	X             *int // -1 leaves placement to the window manager
	Y             *int
	Resizable     *bool
	Hidden        *bool
	HighDPI       *bool // request a framebuffer at native display scale
	GLMajor       *int
	GLMinor       *int
	CoreProfile   *bool
	DebugContext  *bool
	DebugBehavior *string // ignore, error or all
	CheckCurrent  *bool
	Headless      *bool // EGL pbuffer instead of a window
}

// Register binds every option to a flag on fs.
func Register(fs *flag.FlagSet) *WindowOptions {
	return &WindowOptions{
		Title:         fs.String("title", "glglue", "Window title"),
		Width:         fs.Int("width", 800, "Window width in screen coordinates"),
		Height:        fs.Int("height", 600, "Window height in screen coordinates"),
		X:             fs.Int("x", -1, "Window x position (-1 for default)"),
		Y:             fs.Int("y", -1, "Window y position (-1 for default)"),
		Resizable:     fs.Bool("resizable", false, "Allow the window to be resized"),
		Hidden:        fs.Bool("hidden", false, "Create the window hidden"),
		HighDPI:       fs.Bool("highdpi", true, "Scale the framebuffer to the display"),
		GLMajor:       fs.Int("gl-major", 3, "Requested OpenGL major version"),
		GLMinor:       fs.Int("gl-minor", 3, "Requested OpenGL minor version"),
		CoreProfile:   fs.Bool("core", true, "Request a core profile context"),
		DebugContext:  fs.Bool("gl-debug", false, "Request a debug context"),
		DebugBehavior: fs.String("debug-output", "error", "GL debug output: ignore, error or all"),
		CheckCurrent:  fs.Bool("check-current", true, "Re-bind the context before work when it is not current"),
		Headless:      fs.Bool("headless", false, "Render into an EGL pbuffer instead of a window"),
	}
}

// Defaults returns options holding the flag defaults without touching the
// process flag set.
func Defaults() *WindowOptions {
	return Register(flag.NewFlagSet("defaults", flag.ContinueOnError))
}

func (o *WindowOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.GLMajor < 1 || *o.GLMinor < 0 {
		return fmt.Errorf("invalid OpenGL version %d.%d", *o.GLMajor, *o.GLMinor)
	}
	if _, err := ParseDebugBehavior(*o.DebugBehavior); err != nil {
		return err
	}
	return nil
}

// ParseDebugBehavior maps a flag value to a graphics.DebugCallbackBehavior.
func ParseDebugBehavior(s string) (graphics.DebugCallbackBehavior, error) {
	switch s {
	case "ignore", "none":
		return graphics.DebugIgnore, nil
	case "error", "":
		return graphics.DebugMessageOnError, nil
	case "all":
		return graphics.DebugPrintAll, nil
	}
	return graphics.DebugIgnore, fmt.Errorf("unknown debug output mode %q", s)
}
