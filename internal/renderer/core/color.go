package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("invalid color")

// ColorKind tells how a Color is encoded.
type ColorKind uint8

const (
	// ColorUnset is the zero value: the terminal default, and the value
	// that loses when styles are patched.
	ColorUnset ColorKind = iota
	ColorBasic           // one of the 16 ANSI colors
	ColorIndexed         // 256-color palette entry
	ColorRGB             // 24-bit true color
)

// Color is a terminal color. The zero value is unset.
type Color struct {
	Kind ColorKind
	// Index holds the palette entry for ColorBasic (0-15) and ColorIndexed.
	Index   uint8
	R, G, B uint8
}

// The 16 basic ANSI colors.
var (
	ColorBlack         = BasicColor(0)
	ColorRed           = BasicColor(1)
	ColorGreen         = BasicColor(2)
	ColorYellow        = BasicColor(3)
	ColorBlue          = BasicColor(4)
	ColorMagenta       = BasicColor(5)
	ColorCyan          = BasicColor(6)
	ColorWhite         = BasicColor(7)
	ColorBrightBlack   = BasicColor(8)
	ColorBrightRed     = BasicColor(9)
	ColorBrightGreen   = BasicColor(10)
	ColorBrightYellow  = BasicColor(11)
	ColorBrightBlue    = BasicColor(12)
	ColorBrightMagenta = BasicColor(13)
	ColorBrightCyan    = BasicColor(14)
	ColorBrightWhite   = BasicColor(15)
)

var basicNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// BasicColor returns one of the 16 ANSI colors. Values above 15 wrap.
func BasicColor(index uint8) Color {
	return Color{Kind: ColorBasic, Index: index % 16}
}

// IndexedColor returns a 256-color palette entry.
func IndexedColor(index uint8) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsSet returns true unless c is the unset color.
func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

// String returns the form ParseColor accepts.
func (c Color) String() string {
	switch c.Kind {
	case ColorBasic:
		if c.Index >= 8 {
			return "bright-" + basicNames[c.Index-8]
		}
		return basicNames[c.Index]
	case ColorIndexed:
		return "idx:" + strconv.Itoa(int(c.Index))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return "default"
	}
}

// ParseColor parses a color specification:
//
//   - "" or "default": unset
//   - ANSI names: "red", "bright-blue", "gray"
//   - palette indices: "208" or "idx:208"
//   - hex: "#ff8800" or "#f80"
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "default", "none":
		return Color{}, nil
	case "gray", "grey":
		return ColorBrightBlack, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	name := strings.TrimPrefix(s, "idx:")
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: palette index %d out of range", ErrInvalidColor, n)
		}
		return IndexedColor(uint8(n)), nil
	}
	if name != s {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	bright := false
	for _, prefix := range []string{"bright-", "bright_", "bright"} {
		if strings.HasPrefix(name, prefix) {
			bright = true
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	for i, n := range basicNames {
		if n == name {
			if bright {
				i += 8
			}
			return BasicColor(uint8(i)), nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustParseColor is ParseColor for literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
