// Package palette holds the named straight-alpha colors used by styles and scenes.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Named colors
var (
	LightGray  = color.NRGBA{200, 200, 200, 255}
	Gray       = color.NRGBA{130, 130, 130, 255}
	DarkGray   = color.NRGBA{80, 80, 80, 255}
	Yellow     = color.NRGBA{253, 249, 0, 255}
	Gold       = color.NRGBA{255, 203, 0, 255}
	Orange     = color.NRGBA{255, 161, 0, 255}
	Pink       = color.NRGBA{255, 109, 194, 255}
	Red        = color.NRGBA{230, 41, 55, 255}
	Maroon     = color.NRGBA{190, 33, 55, 255}
	Green      = color.NRGBA{0, 228, 48, 255}
	Lime       = color.NRGBA{0, 158, 47, 255}
	DarkGreen  = color.NRGBA{0, 117, 44, 255}
	SkyBlue    = color.NRGBA{102, 191, 255, 255}
	Blue       = color.NRGBA{0, 121, 241, 255}
	DarkBlue   = color.NRGBA{0, 82, 172, 255}
	Purple     = color.NRGBA{200, 122, 255, 255}
	Violet     = color.NRGBA{135, 60, 190, 255}
	DarkPurple = color.NRGBA{112, 31, 126, 255}
	Beige      = color.NRGBA{211, 176, 131, 255}
	Brown      = color.NRGBA{127, 106, 79, 255}
	DarkBrown  = color.NRGBA{76, 63, 47, 255}
	White      = color.NRGBA{255, 255, 255, 255}
	Black      = color.NRGBA{0, 0, 0, 255}
	Blank      = color.NRGBA{0, 0, 0, 0}
	Magenta    = color.NRGBA{255, 0, 255, 255}
	RayWhite   = color.NRGBA{245, 245, 245, 255}
)

var byName = map[string]color.NRGBA{
	"lightgray":  LightGray,
	"gray":       Gray,
	"darkgray":   DarkGray,
	"yellow":     Yellow,
	"gold":       Gold,
	"orange":     Orange,
	"pink":       Pink,
	"red":        Red,
	"maroon":     Maroon,
	"green":      Green,
	"lime":       Lime,
	"darkgreen":  DarkGreen,
	"skyblue":    SkyBlue,
	"blue":       Blue,
	"darkblue":   DarkBlue,
	"purple":     Purple,
	"violet":     Violet,
	"darkpurple": DarkPurple,
	"beige":      Beige,
	"brown":      Brown,
	"darkbrown":  DarkBrown,
	"white":      White,
	"black":      Black,
	"blank":      Blank,
	"magenta":    Magenta,
	"raywhite":   RayWhite,
}

// Fade returns c with its alpha set to alpha (clamped to [0, 1]) of full opacity.
func Fade(c color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(255 * alpha)
	return c
}

// Parse resolves a color name ("LightGray", "dark_blue") or a hex string
// ("#e62937" or "#e6293780" with alpha).
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	if c, ok := byName[key]; ok {
		return c, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
