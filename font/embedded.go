package font

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded last-resort faces. They are compiled-in constants loaded once
// per use and treated as ordinary FontSources with no special code paths:
// a face built from them is indistinguishable from one read off disk.

// embeddedFallback picks the embedded monospace variant closest to the
// requested weight and slant.
func embeddedFallback(weight int, italic bool) ([]byte, Attributes) {
	bold := weight >= 600
	switch {
	case bold && italic:
		return gomonobolditalic.TTF, Attributes{Weight: 700, Italic: true}
	case bold:
		return gomonobold.TTF, Attributes{Weight: 700}
	case italic:
		return gomonoitalic.TTF, Attributes{Weight: 400, Italic: true}
	default:
		return gomono.TTF, Attributes{Weight: 400}
	}
}

// embeddedSymbol returns the embedded symbol face appended unconditionally
// as the last catalog slot.
func embeddedSymbol() ([]byte, Attributes) {
	return goregular.TTF, Attributes{Weight: 400}
}

// mustEmbedded parses an embedded face. Embedded fonts are compiled into
// the binary and always parse; a failure is a build defect.
func mustEmbedded(data []byte, attrs, requested Attributes) *FontSource {
	src, err := NewFontSource(data, attrs, requested)
	if err != nil {
		panic(err)
	}
	return src
}
