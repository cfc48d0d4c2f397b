package glue

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glglue/glfwcontext"
	"github.com/richinsley/glglue/graphics"
)

func initGLFW(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "darwin" {
		t.Skip("GLFW only runs on the process main thread on macOS")
	}
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("GLFW unavailable: %v", r)
		}
	}()
	if err := glfwcontext.InitGraphics(); err != nil {
		t.Skipf("GLFW unavailable: %v", err)
	}
	t.Cleanup(glfwcontext.TerminateGraphics)
}

func TestGLFWEndToEnd(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	initGLFW(t)

	f, err := Build(glfwcontext.NewWindowBuilder("glue test", 800, 600).Hidden(), quiet())
	var cerr *glfwcontext.CreationError
	if errors.As(err, &cerr) || errors.Is(err, graphics.ErrIncompatibleOpenGL) {
		t.Skipf("no usable OpenGL: %v", err)
	}
	require.NoError(t, err)
	defer f.Close()

	be := f.Backend()
	be.MakeCurrent()
	assert.True(t, be.IsCurrent())
	assert.Nil(t, be.GetProcAddress("gl Not A Symbol"))

	w1, h1 := be.GetFramebufferDimensions()
	w2, h2 := be.GetFramebufferDimensions()
	assert.Equal(t, w1, w2)
	assert.Equal(t, h1, h2)

	frame := f.Draw()
	w, h := frame.Dimensions()
	require.Positive(t, w)
	assert.Equal(t, 0, w%800)
	assert.Equal(t, w/800, h/600)

	frame.Clear(0.1, 0.2, 0.3, 1)
	require.NoError(t, frame.Finish())

	if idx, err := f.DisplayIndex(); err == nil {
		assert.GreaterOrEqual(t, idx, 0)
	}
}
