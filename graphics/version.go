package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// API distinguishes desktop OpenGL from OpenGL ES.
type API int

const (
	DesktopGL API = iota
	GLES
)

func (a API) String() string {
	if a == GLES {
		return "OpenGL ES"
	}
	return "OpenGL"
}

// Version is a parsed GL_VERSION string.
type Version struct {
	API   API
	Major int
	Minor int
}

// DefaultMinimumVersions are the lowest versions NewContext accepts unless
// overridden with WithMinimumVersion.
var DefaultMinimumVersions = map[API]Version{
	DesktopGL: {API: DesktopGL, Major: 3, Minor: 3},
	GLES:      {API: GLES, Major: 3, Minor: 0},
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.API, v.Major, v.Minor)
}

// AtLeast reports whether v belongs to the same API as want and is not older.
func (v Version) AtLeast(want Version) bool {
	if v.API != want.API {
		return false
	}
	if v.Major != want.Major {
		return v.Major > want.Major
	}
	return v.Minor >= want.Minor
}

// ParseVersion understands the forms drivers report, e.g.
// "4.6.0 NVIDIA 535.54", "3.3 (Core Profile) Mesa 23.0.4" and
// "OpenGL ES 3.2 Mesa 22.3.6".
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(rest, "OpenGL ES"); ok {
		v.API = GLES
		// ES 1.x reports "OpenGL ES-CM 1.1" or "OpenGL ES-CL 1.1".
		after = strings.TrimPrefix(after, "-CM")
		after = strings.TrimPrefix(after, "-CL")
		rest = strings.TrimSpace(after)
	}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	parts := strings.SplitN(rest, ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("malformed GL_VERSION %q", s)
	}
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("malformed GL_VERSION %q: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("malformed GL_VERSION %q: %w", s, err)
	}
	return v, nil
}
