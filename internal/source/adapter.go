package source

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
)

// Separator joins property values in a display string.
const Separator = " | "

// DefaultProperties are shown for objects when no properties are given.
// Only those present on the object are used.
var DefaultProperties = []string{"name", "title", "id"}

// Adapter builds display strings for structured values.
type Adapter struct {
	properties []string
}

// NewAdapter creates an adapter showing the given gjson property paths.
// With no paths it falls back to DefaultProperties.
func NewAdapter(properties ...string) *Adapter {
	var props []string
	for _, p := range properties {
		if p = strings.TrimSpace(p); p != "" {
			props = append(props, p)
		}
	}
	return &Adapter{properties: props}
}

// Item wraps value in a picker item. The item's data is the compact JSON
// text of the value.
func (a *Adapter) Item(value gjson.Result) fuzzy.Item {
	return fuzzy.Item{Text: a.Display(value), Data: compact(value)}
}

// Display returns the display string for value.
//
// With explicit properties, each property's value is shown (empty when
// absent) joined by Separator. Otherwise an object shows whichever default
// properties it has. Anything else shows as itself: strings and numbers
// as text, other values as compact JSON.
func (a *Adapter) Display(value gjson.Result) string {
	if len(a.properties) > 0 {
		parts := make([]string, len(a.properties))
		for i, p := range a.properties {
			parts[i] = text(value.Get(p))
		}
		return strings.Join(parts, Separator)
	}

	if value.IsObject() {
		var parts []string
		for _, p := range DefaultProperties {
			if v := value.Get(p); v.Exists() {
				parts = append(parts, text(v))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, Separator)
		}
	}
	return text(value)
}

// text renders a value for display.
func text(v gjson.Result) string {
	switch v.Type {
	case gjson.String, gjson.Number:
		return v.String()
	case gjson.Null:
		if !v.Exists() {
			return ""
		}
	}
	return compact(v)
}

func compact(v gjson.Result) string {
	if !v.Exists() {
		return ""
	}
	return v.Get("@ugly").Raw
}
