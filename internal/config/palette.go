package config

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// rgba builds a non-premultiplied color from a hex string and an alpha in [0, 1].
func rgba(hex string, alpha float64) color.NRGBA {
	r, g, b := mustHex(hex).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// mustHex parses a palette literal and panics on a malformed one.
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Oil shades, lighter than real oil so they read on dark wallpapers.
var classicOil = []color.NRGBA{
	rgba("#282832", 0.95),
	rgba("#32323c", 0.9),
	rgba("#2d2d37", 0.95),
	rgba("#23232d", 0.95),
	rgba("#372d28", 0.9),
	rgba("#3c322d", 0.9),
}

var classicHighlights = []color.NRGBA{
	rgba("#646478", 0.7),
	rgba("#6e6e82", 0.6),
	rgba("#78736e", 0.6),
}

var denseOil = []color.NRGBA{
	rgba("#1a1a1f", 1),
	rgba("#252530", 1),
	rgba("#202028", 1),
	rgba("#151518", 1),
	rgba("#2a251f", 1),
	rgba("#302a24", 1),
}

var denseHighlights = []color.NRGBA{
	rgba("#4a4a50", 1),
	rgba("#4a4a50", 0.9),
	rgba("#504b46", 0.9),
}
