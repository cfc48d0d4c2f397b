package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"4.6.0 NVIDIA 535.54.03", Version{DesktopGL, 4, 6}},
		{"3.3 (Core Profile) Mesa 23.0.4", Version{DesktopGL, 3, 3}},
		{"4.1 Metal - 76.3", Version{DesktopGL, 4, 1}},
		{"2.1", Version{DesktopGL, 2, 1}},
		{"OpenGL ES 3.2 Mesa 22.3.6", Version{GLES, 3, 2}},
		{"OpenGL ES-CM 1.1", Version{GLES, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseVersionMalformed(t *testing.T) {
	for _, in := range []string{"", "garbage", "4", "x.y", "OpenGL ES"} {
		_, err := ParseVersion(in)
		assert.Error(t, err, in)
	}
}

func TestVersionAtLeast(t *testing.T) {
	v := Version{DesktopGL, 4, 1}
	assert.True(t, v.AtLeast(Version{DesktopGL, 3, 3}))
	assert.True(t, v.AtLeast(Version{DesktopGL, 4, 1}))
	assert.False(t, v.AtLeast(Version{DesktopGL, 4, 3}))
	assert.False(t, v.AtLeast(Version{GLES, 2, 0}), "APIs never compare")
	assert.Equal(t, "OpenGL ES 3.0", Version{GLES, 3, 0}.String())
}
