package common

// Color is a linear RGBA color with components in [0, 1].
type Color [4]float32

// Named colors used by the editor.
var (
	Black     = Color{0, 0, 0, 1}
	White     = Color{1, 1, 1, 1}
	DimGray   = Color{0.411764741, 0.411764741, 0.411764741, 1}
	Red       = Color{1, 0, 0, 1}
	DarkRed   = Color{0.545098066, 0, 0, 1}
	Orange    = Color{1, 0.647058845, 0, 1}
	Yellow    = Color{1, 1, 0, 1}
	LightBlue = Color{0.678431392, 0.847058892, 0.901960850, 1}
)

var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"dimgray":   DimGray,
	"red":       Red,
	"darkred":   DarkRed,
	"orange":    Orange,
	"yellow":    Yellow,
	"lightblue": LightBlue,
}

// ColorByName looks up one of the named colors. Names are lowercase without spaces.
//
// Parameters:
//   - name: the color name, e.g. "dimgray"
//
// Returns:
//   - Color: the color, or the zero Color if unknown
//   - bool: true if the name is known
func ColorByName(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}
