package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/richinsley/glglue/options"
)

func hintMap(b *WindowBuilder) map[glfw.Hint]int {
	m := make(map[glfw.Hint]int)
	for _, h := range b.hints() {
		m[h.hint] = h.value
	}
	return m
}

func TestHintsLegacyVersionHasNoProfile(t *testing.T) {
	m := hintMap(NewWindowBuilder("t", 1, 1).ContextVersion(2, 1))
	_, ok := m[glfw.OpenGLProfile]
	assert.False(t, ok)
	assert.Equal(t, glfw.OpenGLAPI, m[glfw.ClientAPI])
}

func TestHintsCompatibilityProfile(t *testing.T) {
	m := hintMap(NewWindowBuilder("t", 1, 1).ContextVersion(4, 5).CompatibilityProfile())
	assert.Equal(t, glfw.OpenGLCompatProfile, m[glfw.OpenGLProfile])
	_, ok := m[glfw.OpenGLForwardCompatible]
	assert.False(t, ok)
}

func TestHintsFlags(t *testing.T) {
	m := hintMap(NewWindowBuilder("t", 1, 1).Hidden().Borderless().HighDPI().DebugContext())
	assert.Equal(t, glfw.False, m[glfw.Visible])
	assert.Equal(t, glfw.False, m[glfw.Decorated])
	assert.Equal(t, glfw.True, m[glfw.ScaleToMonitor])
	assert.Equal(t, glfw.True, m[glfw.CocoaRetinaFramebuffer])
	assert.Equal(t, glfw.True, m[glfw.OpenGLDebugContext])
	assert.Equal(t, glfw.False, m[glfw.Resizable])
}

func TestFromOptions(t *testing.T) {
	o := options.Defaults()
	*o.Title = "demo"
	*o.X, *o.Y = 5, 6
	*o.GLMajor, *o.GLMinor = 4, 1
	*o.CoreProfile = false
	*o.Resizable = true

	b := FromOptions(o)
	assert.Equal(t, "demo", b.title)
	assert.Equal(t, 800, b.width)
	assert.Equal(t, 600, b.height)
	assert.Equal(t, 5, b.x)
	assert.Equal(t, 6, b.y)
	assert.Equal(t, 4, b.major)
	assert.Equal(t, 1, b.minor)
	assert.False(t, b.core)
	assert.True(t, b.resizable)
	assert.True(t, b.highDPI)
}
