package display

import (
	"fmt"
	"math"
)

// Transform names accepted by the compositor backends.
const (
	TransformNormal     = "normal"
	Transform90         = "90"
	Transform180        = "180"
	Transform270        = "270"
	TransformFlipped    = "flipped"
	TransformFlipped90  = "flipped-90"
	TransformFlipped180 = "flipped-180"
	TransformFlipped270 = "flipped-270"
)

// transforms is ordered by the wl_output transform enum value.
var transforms = []string{
	TransformNormal,
	Transform90,
	Transform180,
	Transform270,
	TransformFlipped,
	TransformFlipped90,
	TransformFlipped180,
	TransformFlipped270,
}

// floatTolerance is used when comparing refresh rates and scale factors that
// went through a text round-trip.
const floatTolerance = 0.001

// Mode describes how a head is laid out.
type Mode struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Refresh      float64 `json:"refresh"`
	Scale        float64 `json:"scale"`
	Transform    string  `json:"transform"`
	X            int     `json:"x"`
	Y            int     `json:"y"`
	Enabled      bool    `json:"enabled"`
	AdaptiveSync bool    `json:"adaptiveSync"`
}

// Output is a head as currently reported by the compositor.
type Output struct {
	// Name is the current port label. It can change across boots and docks.
	Name string `json:"name"`

	Make   string `json:"make"`
	Model  string `json:"model"`
	Serial string `json:"serial"`

	// Mode is the layout the compositor currently reports for the head.
	Mode Mode `json:"mode"`
}

// Equal reports whether two modes describe the same layout.
// A disabled head only compares its enabled flag.
func (m Mode) Equal(other Mode) bool {
	if m.Enabled != other.Enabled {
		return false
	}
	if !m.Enabled {
		return true
	}
	return m.Width == other.Width &&
		m.Height == other.Height &&
		math.Abs(m.Refresh-other.Refresh) < floatTolerance &&
		math.Abs(m.Scale-other.Scale) < floatTolerance &&
		NormalizeTransform(m.Transform) == NormalizeTransform(other.Transform) &&
		m.X == other.X &&
		m.Y == other.Y &&
		m.AdaptiveSync == other.AdaptiveSync
}

// String renders the mode the way it is shown to users.
func (m Mode) String() string {
	if !m.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("%dx%d@%gHz +%d+%d scale %g %s",
		m.Width, m.Height, m.Refresh, m.X, m.Y, m.Scale, NormalizeTransform(m.Transform))
}

// NormalizeTransform maps an empty or unknown transform to "normal".
func NormalizeTransform(t string) string {
	for _, known := range transforms {
		if t == known {
			return t
		}
	}
	return TransformNormal
}

// TransformFromIndex maps a wl_output transform enum value to its name.
// Out-of-range values map to "normal".
func TransformFromIndex(i int) string {
	if i < 0 || i >= len(transforms) {
		return TransformNormal
	}
	return transforms[i]
}

// TransformIndex is the inverse of TransformFromIndex.
func TransformIndex(t string) int {
	t = NormalizeTransform(t)
	for i, known := range transforms {
		if t == known {
			return i
		}
	}
	return 0
}
