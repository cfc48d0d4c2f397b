package options

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glglue/graphics"
)

func TestRegister(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := Register(fs)
	require.NoError(t, fs.Parse([]string{"-title", "demo", "-width", "1024", "-debug-output", "all", "-hidden"}))

	assert.Equal(t, "demo", *o.Title)
	assert.Equal(t, 1024, *o.Width)
	assert.Equal(t, 600, *o.Height)
	assert.True(t, *o.Hidden)
	assert.True(t, *o.CheckCurrent)
	require.NoError(t, o.Validate())
}

func TestValidate(t *testing.T) {
	o := Defaults()
	require.NoError(t, o.Validate())

	*o.Width = 0
	assert.Error(t, o.Validate())

	o = Defaults()
	*o.GLMajor = 0
	assert.Error(t, o.Validate())

	o = Defaults()
	*o.DebugBehavior = "verbose"
	assert.Error(t, o.Validate())
}

func TestParseDebugBehavior(t *testing.T) {
	for in, want := range map[string]graphics.DebugCallbackBehavior{
		"ignore": graphics.DebugIgnore,
		"none":   graphics.DebugIgnore,
		"error":  graphics.DebugMessageOnError,
		"":       graphics.DebugMessageOnError,
		"all":    graphics.DebugPrintAll,
	} {
		got, err := ParseDebugBehavior(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" && in != "none" {
			assert.Equal(t, in, got.String())
		}
	}
}
