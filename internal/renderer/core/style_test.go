package core

import "testing"

func TestStylePatch(t *testing.T) {
	base := NewStyle(ColorWhite).WithBackground(ColorBlue).Reverse()

	tests := []struct {
		name    string
		overlay Style
		want    Style
	}{
		{
			name:    "empty overlay keeps base",
			overlay: DefaultStyle(),
			want:    base,
		},
		{
			name:    "foreground wins",
			overlay: NewStyle(ColorYellow),
			want:    NewStyle(ColorYellow).WithBackground(ColorBlue).Reverse(),
		},
		{
			name:    "attributes replace",
			overlay: DefaultStyle().Bold(),
			want:    NewStyle(ColorWhite).WithBackground(ColorBlue).Bold(),
		},
		{
			name:    "explicit empty attributes clear",
			overlay: DefaultStyle().WithAttributes(AttrNone),
			want:    NewStyle(ColorWhite).WithBackground(ColorBlue).WithAttributes(AttrNone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Patch(tt.overlay); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestStyleAttributeBuilders(t *testing.T) {
	s := DefaultStyle().Bold().Italic().Underline().Dim().Strikethrough()
	for _, a := range []Attribute{AttrBold, AttrItalic, AttrUnderline, AttrDim, AttrStrikethrough} {
		if !s.Attributes.Has(a) {
			t.Errorf("expected %s to be set", a)
		}
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("reverse should not be set")
	}
	if !s.HasAttributes() {
		t.Error("expected attributes to be marked as set")
	}
}

func TestStyleIsDefault(t *testing.T) {
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if NewStyle(ColorRed).IsDefault() {
		t.Error("colored style should not be default")
	}
	if DefaultStyle().WithAttributes(AttrNone).IsDefault() {
		t.Error("explicit attributes should not be default")
	}
}

func TestAttributeString(t *testing.T) {
	if got := AttrNone.String(); got != "none" {
		t.Errorf("expected none, got %q", got)
	}
	if got := AttrBold.With(AttrReverse).String(); got != "bold|reverse" {
		t.Errorf("expected bold|reverse, got %q", got)
	}
}

func TestCellEquality(t *testing.T) {
	a := NewCell('x', NewStyle(ColorRed))
	b := NewCell('x', NewStyle(ColorRed))
	if a != b {
		t.Error("cells with the same rune and style should be equal")
	}
	if a == a.WithStyle(DefaultStyle()) {
		t.Error("cells with different styles should differ")
	}
	if !EmptyCell().IsEmpty() {
		t.Error("EmptyCell should be empty")
	}
}
