package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/richinsley/glglue/glfwcontext"
	"github.com/richinsley/glglue/glue"
	"github.com/richinsley/glglue/graphics"
	"github.com/richinsley/glglue/options"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	o := options.Defaults()
	frames := 120

	app := &cli.App{
		Name:  "glglue",
		Usage: "open an OpenGL window through GLFW and present cleared frames",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Value: *o.Title, Destination: o.Title, Usage: "window title"},
			&cli.IntFlag{Name: "width", Value: *o.Width, Destination: o.Width, Usage: "window width"},
			&cli.IntFlag{Name: "height", Value: *o.Height, Destination: o.Height, Usage: "window height"},
			&cli.IntFlag{Name: "x", Value: *o.X, Destination: o.X, Usage: "window x position (-1 for default)"},
			&cli.IntFlag{Name: "y", Value: *o.Y, Destination: o.Y, Usage: "window y position (-1 for default)"},
			&cli.BoolFlag{Name: "resizable", Destination: o.Resizable, Usage: "allow resizing"},
			&cli.BoolFlag{Name: "hidden", Destination: o.Hidden, Usage: "create the window hidden"},
			&cli.BoolFlag{Name: "highdpi", Value: *o.HighDPI, Destination: o.HighDPI, Usage: "scale the framebuffer to the display"},
			&cli.IntFlag{Name: "gl-major", Value: *o.GLMajor, Destination: o.GLMajor, Usage: "requested OpenGL major version"},
			&cli.IntFlag{Name: "gl-minor", Value: *o.GLMinor, Destination: o.GLMinor, Usage: "requested OpenGL minor version"},
			&cli.BoolFlag{Name: "core", Value: *o.CoreProfile, Destination: o.CoreProfile, Usage: "request a core profile"},
			&cli.BoolFlag{Name: "gl-debug", Destination: o.DebugContext, Usage: "request a debug context"},
			&cli.StringFlag{Name: "debug-output", Value: *o.DebugBehavior, Destination: o.DebugBehavior, Usage: "GL debug output: ignore, error or all"},
			&cli.BoolFlag{Name: "check-current", Value: *o.CheckCurrent, Destination: o.CheckCurrent, Usage: "re-bind the context when it is not current"},
			&cli.BoolFlag{Name: "headless", Destination: o.Headless, Usage: "render into an EGL pbuffer"},
			&cli.IntFlag{Name: "frames", Value: frames, Destination: &frames, Usage: "number of frames to present"},
		},
		Action: func(*cli.Context) error {
			return run(o, frames)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(o *options.WindowOptions, frames int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	opts, err := glue.FromOptions(o)
	if err != nil {
		return err
	}

	var f *glue.Facade
	if *o.Headless {
		f, err = glue.BuildHeadless(*o.Width, *o.Height, opts...)
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			return fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		defer glfwcontext.TerminateGraphics()
		f, err = glue.Build(glfwcontext.FromOptions(o), opts...)
	}
	if errors.Is(err, graphics.ErrIncompatibleOpenGL) {
		return fmt.Errorf("this machine's OpenGL is too old: %w", err)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	log.Printf("Using %s", f.GetContext().Version())
	if idx, err := f.DisplayIndex(); err != nil {
		log.Printf("Display index unavailable: %v", err)
	} else {
		log.Printf("Window is on display %d", idx)
	}

	for i := 0; i < frames; i++ {
		t := float32(i) / float32(frames)
		frame := f.Draw()
		frame.Clear(t, 0.2, 1-t, 1)
		if err := frame.Finish(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if !*o.Headless {
			glfwcontext.PollEvents()
		}
	}
	log.Printf("Presented %d frames", frames)
	return nil
}
