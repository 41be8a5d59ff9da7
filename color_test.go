package sugarloaf

import (
	"image/color"
	"math"
	"strconv"
	"strings"
	"testing"
)

func approxColor(a, b RGBA) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 0.005 {
			return false
		}
	}
	return true
}

func TestRGB(t *testing.T) {
	c := RGB(0.25, 0.5, 0.75)
	if c.R() != 0.25 || c.G() != 0.5 || c.B() != 0.75 {
		t.Errorf("components = %v, %v, %v", c.R(), c.G(), c.B())
	}
	if c.A() != 1 {
		t.Errorf("RGB should be opaque, alpha = %v", c.A())
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"black", "#000000", RGBA{0, 0, 0, 1}},
		{"white", "#ffffff", RGBA{1, 1, 1, 1}},
		{"red no hash", "ff0000", RGBA{1, 0, 0, 1}},
		{"terminal background", "#1e1e2e", RGBA{0x1e / 255.0, 0x1e / 255.0, 0x2e / 255.0, 1}},
		{"with alpha", "#ff000080", RGBA{1, 0, 0, 0x80 / 255.0}},
		{"fully transparent", "#00000000", RGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q): %v", tt.in, err)
			}
			if !approxColor(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#gggggg", "#12345678ff", "not a color"} {
		if _, err := Hex(in); err == nil {
			t.Errorf("Hex(%q) should fail", in)
		}
	}
}

func TestHexErrorQuotesInput(t *testing.T) {
	// Both failure paths must report the string as the caller passed it,
	// hash and alpha suffix included.
	for _, in := range []string{"#1e1e2egg", "#gggggg"} {
		_, err := Hex(in)
		if err == nil {
			t.Fatalf("Hex(%q) should fail", in)
		}
		if !strings.Contains(err.Error(), strconv.Quote(in)) {
			t.Errorf("error %q does not quote input %q", err, in)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on malformed input")
		}
	}()
	MustHex("#nothex")
}

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
	}{
		{"opaque", RGBA{0.2, 0.4, 0.6, 1}},
		// Non-opaque colors exercise the un-premultiply path: color.Color
		// reports channels scaled by alpha.
		{"translucent", RGBA{0.2, 0.4, 0.6, 0.8}},
		{"half alpha", RGBA{1, 0, 0.5, 0.5}},
		{"transparent", RGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := FromColor(tt.c.Color())
			if !approxColor(tt.c, back) {
				t.Errorf("round trip = %v, want %v", back, tt.c)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if !approxColor(got, RGBA{1, 0, 0, 1}) {
		t.Errorf("FromColor = %v, want opaque red", got)
	}
}
