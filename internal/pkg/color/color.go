// Package color converts colours between hex, RGB and HSL notations.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for a string that is not #RGB or #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// RGB holds 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// IsValidHex reports whether s is #RGB or #RRGGBB.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses #RGB or #RRGGBB. Shorthand digits are doubled.
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the lowercase #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts using the max/min channel algorithm.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	chroma := max - min
	var s float64
	if l > 0.5 {
		s = chroma / (2 - max - min)
	} else {
		s = chroma / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / chroma
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}

	return HSL{H: h / 6 * 360, S: s * 100, L: l * 100}
}

// Brightness returns the perceived brightness in percent, rounded.
func (c RGB) Brightness() int {
	v := (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000 / 255
	return int(math.Round(v * 100))
}

// Rounded returns h, s and l rounded to integers for display.
func (c HSL) Rounded() (h, s, l int) {
	return int(math.Round(c.H)), int(math.Round(c.S)), int(math.Round(c.L))
}

// RGB converts back to 8-bit channels.
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360) / 360
	if h < 0 {
		h++
	}
	s := clamp(c.S/100, 0, 1)
	l := clamp(c.L/100, 0, 1)

	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+1.0/3)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Formats lists every notation of a colour as displayed by the converter.
type Formats struct {
	Hex    string `json:"hex" yaml:"hex"`
	RGB    string `json:"rgb" yaml:"rgb"`
	RGBA   string `json:"rgba" yaml:"rgba"`
	HSL    string `json:"hsl" yaml:"hsl"`
	HSLA   string `json:"hsla" yaml:"hsla"`
	Filter string `json:"filter" yaml:"filter"`
	Values Values `json:"values" yaml:"values"`
}

// Values carries the numeric channels behind Formats.
type Values struct {
	RGB RGB `json:"rgb" yaml:"rgb"`
	H   int `json:"h" yaml:"h"`
	S   int `json:"s" yaml:"s"`
	L   int `json:"l" yaml:"l"`
}

// NormalizeHex trims s and adds the leading "#" when it is missing.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// Convert validates a hex colour, with or without its leading "#", and
// renders all notations.
func Convert(hex string) (Formats, error) {
	hex = NormalizeHex(hex)
	rgb, err := ParseHex(hex)
	if err != nil {
		return Formats{}, err
	}

	h, s, l := rgb.HSL().Rounded()
	return Formats{
		Hex:    hex,
		RGB:    fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B),
		RGBA:   fmt.Sprintf("rgba(%d, %d, %d, 1)", rgb.R, rgb.G, rgb.B),
		HSL:    fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l),
		HSLA:   fmt.Sprintf("hsla(%d, %d%%, %d%%, 1)", h, s, l),
		Filter: fmt.Sprintf("filter: brightness(%d%%)", rgb.Brightness()),
		Values: Values{RGB: rgb, H: h, S: s, L: l},
	}, nil
}
