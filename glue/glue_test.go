package glue

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glglue/glfwcontext"
	"github.com/richinsley/glglue/graphics"
	"github.com/richinsley/glglue/graphics/graphicstest"
	"github.com/richinsley/glglue/options"
)

// fakePlatform routes backend construction to be and the driver to drv
// until the test ends.
func fakePlatform(t *testing.T, be *graphicstest.Backend, drv *graphicstest.Driver) {
	t.Helper()
	savedBackend, savedHeadless, savedDriver := newBackend, newHeadless, newDriver
	t.Cleanup(func() { newBackend, newHeadless, newDriver = savedBackend, savedHeadless, savedDriver })

	newBackend = func(*glfwcontext.WindowBuilder) (backend, error) { return be, nil }
	newHeadless = func(int, int) (backend, error) { return be, nil }
	newDriver = func() graphics.Driver { return drv }
}

func quiet() Option { return WithLogger(log.New(&bytes.Buffer{}, "", 0)) }

func TestBuildDrawFinish(t *testing.T) {
	be := graphicstest.NewBackend(800, 600)
	fakePlatform(t, be, graphicstest.NewDriver("4.6.0 NVIDIA 535.54"))

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	frame := f.Draw()
	w, h := frame.Dimensions()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Same(t, f.GetContext(), frame.Context())

	require.NoError(t, frame.Finish())
	assert.Equal(t, 1, be.Swaps)
}

func TestDrawHighDPI(t *testing.T) {
	be := graphicstest.NewBackend(1600, 1200)
	fakePlatform(t, be, graphicstest.NewDriver("4.1 Metal - 76.3"))

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600).HighDPI(), quiet())
	require.NoError(t, err)
	defer f.Close()

	w, h := f.Draw().Dimensions()
	assert.Equal(t, 0, w%800)
	assert.Equal(t, w/800, h/600)

	// Dimensions are read at Draw time.
	be.Width, be.Height = 2000, 1000
	w, h = f.Draw().Dimensions()
	assert.Equal(t, 2000, w)
	assert.Equal(t, 1000, h)
}

func TestBuildIncompatibleOpenGL(t *testing.T) {
	be := graphicstest.NewBackend(800, 600)
	fakePlatform(t, be, graphicstest.NewDriver("2.1 Mesa 10.0"))

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, graphics.ErrIncompatibleOpenGL)
	assert.True(t, be.Destroyed, "the window is released when negotiation fails")
}

func TestBuildBackendFailure(t *testing.T) {
	fakePlatform(t, nil, graphicstest.NewDriver("4.6"))
	cerr := &glfwcontext.CreationError{Stage: glfwcontext.StageWindow, Err: errors.New("no display")}
	newBackend = func(*glfwcontext.WindowBuilder) (backend, error) { return nil, cerr }

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, cerr)
	assert.NotErrorIs(t, err, graphics.ErrIncompatibleOpenGL)
}

func TestBuildDefaultsToErrorOnlyDebugOutput(t *testing.T) {
	drv := graphicstest.NewDriver("4.6")
	fakePlatform(t, graphicstest.NewBackend(800, 600), drv)

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, drv.DebugEnabled)
	assert.True(t, drv.ErrorsOnly)
}

func TestBuildDebugBehaviorOption(t *testing.T) {
	drv := graphicstest.NewDriver("4.6")
	fakePlatform(t, graphicstest.NewBackend(800, 600), drv)

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet(), WithDebugBehavior(graphics.DebugIgnore))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, drv.DebugEnabled)
}

func TestBuildWithDriverAndMinimum(t *testing.T) {
	fakePlatform(t, graphicstest.NewBackend(800, 600), graphicstest.NewDriver("4.6"))
	own := graphicstest.NewDriver("3.3")

	_, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet(), WithDriver(own),
		WithMinimumVersion(graphics.Version{API: graphics.DesktopGL, Major: 4, Minor: 0}))
	assert.ErrorIs(t, err, graphics.ErrIncompatibleOpenGL)
}

func TestDisplayIndex(t *testing.T) {
	be := graphicstest.NewBackend(800, 600)
	be.Display = 1
	fakePlatform(t, be, graphicstest.NewDriver("4.6"))

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	require.NoError(t, err)
	defer f.Close()

	idx, err := f.DisplayIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	be.DisplayErr = errors.New("window is not on any display")
	_, err = f.DisplayIndex()
	assert.EqualError(t, err, "window is not on any display")
}

func TestCloseWaitsForFrames(t *testing.T) {
	be := graphicstest.NewBackend(800, 600)
	fakePlatform(t, be, graphicstest.NewDriver("4.6"))

	f, err := Build(glfwcontext.NewWindowBuilder("test", 800, 600), quiet())
	require.NoError(t, err)
	assert.Equal(t, 2, be.Refs, "facade and context each hold the backend")

	frame := f.Draw()
	f.Close()
	f.Close()
	assert.False(t, be.Destroyed)
	assert.Panics(t, func() { f.Draw() })

	require.NoError(t, frame.Finish())
	assert.True(t, be.Destroyed)
	assert.Equal(t, 1, be.Swaps)
}

func TestBuildHeadless(t *testing.T) {
	be := graphicstest.NewBackend(256, 256)
	fakePlatform(t, be, graphicstest.NewDriver("4.5 (Compatibility Profile) Mesa 23.1"))

	f, err := BuildHeadless(256, 256, quiet())
	require.NoError(t, err)
	defer f.Close()

	w, h := f.Draw().Dimensions()
	assert.Equal(t, 256, w)
	assert.Equal(t, 256, h)
}

func TestFromOptions(t *testing.T) {
	o := options.Defaults()
	*o.DebugBehavior = "all"
	*o.CheckCurrent = false

	opts, err := FromOptions(o)
	require.NoError(t, err)

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	assert.Equal(t, graphics.DebugPrintAll, cfg.behavior)
	assert.False(t, cfg.checkCurrent)

	*o.DebugBehavior = "loud"
	_, err = FromOptions(o)
	assert.Error(t, err)
}
