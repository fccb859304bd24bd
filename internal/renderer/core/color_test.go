package core

import (
	"errors"
	"testing"
)

func TestColorZeroValueIsUnset(t *testing.T) {
	var c Color
	if c.IsSet() {
		t.Error("zero color should be unset")
	}
	if c.String() != "default" {
		t.Errorf("expected default, got %q", c.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"", Color{}},
		{"default", Color{}},
		{"red", ColorRed},
		{"Cyan", ColorCyan},
		{"bright-blue", ColorBrightBlue},
		{"brightwhite", ColorBrightWhite},
		{"gray", ColorBrightBlack},
		{"208", IndexedColor(208)},
		{"idx:17", IndexedColor(17)},
		{"#ff8800", RGB(0xff, 0x88, 0x00)},
		{"#FFF", RGB(0xff, 0xff, 0xff)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"purple-ish", "256", "idx:x", "#12", "#gggggg"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	colors := []Color{ColorRed, ColorBrightMagenta, IndexedColor(99), RGB(1, 2, 3)}
	for _, c := range colors {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", c.String(), err)
		}
		if got != c {
			t.Errorf("expected %+v, got %+v", c, got)
		}
	}
}
