package sugarloaf

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a premultiplied-free color with components in the range [0, 1],
// laid out the way GPU vertex buffers expect it: {r, g, b, a}.
type RGBA [4]float32

// R returns the red component.
func (c RGBA) R() float32 { return c[0] }

// G returns the green component.
func (c RGBA) G() float32 { return c[1] }

// B returns the blue component.
func (c RGBA) B() float32 { return c[2] }

// A returns the alpha component.
func (c RGBA) A() float32 { return c[3] }

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{r, g, b, 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c[0] * 255)),
		G: uint8(clamp255(c[1] * 255)),
		B: uint8(clamp255(c[2] * 255)),
		A: uint8(clamp255(c[3] * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
// color.Color reports alpha-premultiplied channels; they are divided back
// out so the result stays premultiplied-free.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		float32(r) / float32(a),
		float32(g) / float32(a),
		float32(b) / float32(a),
		float32(a) / 65535,
	}
}

// Hex parses a color from a hex string such as "#1e1e2e" or "#1e1e2eff".
// The leading '#' is optional. An 8-digit form carries an alpha suffix;
// otherwise the color is opaque.
func Hex(s string) (RGBA, error) {
	orig := s
	s = strings.TrimPrefix(s, "#")

	alpha := float32(1)
	if len(s) == 8 {
		v, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("sugarloaf: invalid hex color %q: %w", orig, err)
		}
		alpha = float32(v) / 255
		s = s[:6]
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("sugarloaf: invalid hex color %q: %w", orig, err)
	}
	return RGBA{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

// MustHex is like Hex but panics on malformed input.
// Intended for package-level defaults written as literals.
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
