package tour

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/phanxgames/spotlight"
)

// ParseColor reads a backdrop color. Accepted forms are an SVG color name
// ("black"), #rgb, #rrggbb and #rrggbbaa. Any form may be followed by
// "@alpha" with alpha in [0, 1], which replaces the alpha channel:
// "black@0.7" is the default backdrop.
func ParseColor(s string) (spotlight.Color, error) {
	s = strings.TrimSpace(s)
	base, alpha, hasAlpha := strings.Cut(s, "@")

	var c spotlight.Color
	var err error
	if strings.HasPrefix(base, "#") {
		c, err = parseHex(base[1:])
	} else {
		rgba, ok := colornames.Map[strings.ToLower(base)]
		if !ok {
			return spotlight.Color{}, fmt.Errorf("unknown color %q", s)
		}
		c = spotlight.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
			A: float64(rgba.A) / 255,
		}
	}
	if err != nil {
		return spotlight.Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	if hasAlpha {
		a, err := strconv.ParseFloat(alpha, 64)
		if err != nil || a < 0 || a > 1 {
			return spotlight.Color{}, fmt.Errorf("color %q: alpha must be a number in [0, 1]", s)
		}
		c.A = a
	}
	return c, nil
}

func parseHex(h string) (spotlight.Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return spotlight.Color{}, fmt.Errorf("want 3, 6 or 8 hex digits, got %d", len(h))
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return spotlight.Color{}, fmt.Errorf("bad hex digits")
	}
	return spotlight.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
