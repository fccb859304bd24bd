package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
)

func texts(items []fuzzy.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func assertTexts(t *testing.T, items []fuzzy.Item, want ...string) {
	t.Helper()
	got := texts(items)
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatLines, false},
		{"lines", FormatLines, false},
		{"JSON", FormatJSON, false},
		{"ndjson", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.expected)
		}
	}
}

func TestReadLines(t *testing.T) {
	items, err := ReadLines(strings.NewReader("apple\r\n\ngrape\n   \nsnap shot"))
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	assertTexts(t, items, "apple", "grape", "snap shot")
	if items[0].Data != "apple" {
		t.Errorf("expected data to be the line, got %v", items[0].Data)
	}
}

func TestReadLinesEmpty(t *testing.T) {
	items, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestReadJSONArray(t *testing.T) {
	input := `[
		{"name": "alpha", "id": 1},
		{"title": "beta"},
		"gamma",
		42
	]`
	items, err := ReadJSON(strings.NewReader(input), NewAdapter())
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	assertTexts(t, items, "alpha | 1", "beta", "gamma", "42")
	if items[0].Data != `{"name":"alpha","id":1}` {
		t.Errorf("expected compact JSON data, got %v", items[0].Data)
	}
}

func TestReadJSONStream(t *testing.T) {
	input := "{\"name\":\"a\"}\n{\"name\":\"b\"}\n{\n  \"name\": \"c\"\n}\n"
	items, err := ReadJSON(strings.NewReader(input), NewAdapter())
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	assertTexts(t, items, "a", "b", "c")
}

func TestReadJSONProperties(t *testing.T) {
	input := `[{"name":"web","meta":{"region":"eu"}},{"name":"db"}]`
	items, err := ReadJSON(strings.NewReader(input), NewAdapter("name", "meta.region"))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	assertTexts(t, items, "web | eu", "db | ")
}

func TestReadJSONFallsBackToCompactText(t *testing.T) {
	items, err := ReadJSON(strings.NewReader(`[{"kind": "x", "n": [1, 2]}]`), NewAdapter())
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	assertTexts(t, items, `{"kind":"x","n":[1,2]}`)
}

func TestReadJSONError(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{\"a\":1}\n{oops}\n"), NewAdapter())
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Format != FormatJSON || de.Index != 1 {
		t.Errorf("expected json value 1, got %s value %d", de.Format, de.Index)
	}
}

func TestReadYAML(t *testing.T) {
	input := `
- name: alpha
  tags: [x, y]
- name: beta
- plain
`
	items, err := ReadYAML(strings.NewReader(input), NewAdapter())
	if err != nil {
		t.Fatalf("ReadYAML error: %v", err)
	}
	assertTexts(t, items, "alpha", "beta", "plain")
	if items[0].Data != `{"name":"alpha","tags":["x","y"]}` {
		t.Errorf("unexpected data %v", items[0].Data)
	}
}

func TestReadYAMLDocuments(t *testing.T) {
	input := "title: one\n---\ntitle: two\n---\n"
	items, err := ReadYAML(strings.NewReader(input), NewAdapter())
	if err != nil {
		t.Fatalf("ReadYAML error: %v", err)
	}
	assertTexts(t, items, "one", "two")
}

func TestReadYAMLNonStringKeys(t *testing.T) {
	items, err := ReadYAML(strings.NewReader("- {1: a, name: n}\n"), NewAdapter("1"))
	if err != nil {
		t.Fatalf("ReadYAML error: %v", err)
	}
	assertTexts(t, items, "a")
}

func TestReadYAMLError(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("a: [1, 2\n"), NewAdapter())
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Format != FormatYAML {
		t.Errorf("expected yaml format, got %s", de.Format)
	}
}

func TestRead(t *testing.T) {
	items, err := Read(strings.NewReader(`[{"id":"x"}]`), Options{Format: FormatJSON, Properties: []string{"id"}})
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	assertTexts(t, items, "x")

	items, err = Read(strings.NewReader("a\nb\n"), Options{})
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	assertTexts(t, items, "a", "b")

	if _, err := Read(strings.NewReader(""), Options{Format: "xml"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestAdapterDisplay(t *testing.T) {
	tests := []struct {
		name     string
		props    []string
		json     string
		expected string
	}{
		{"default name", nil, `{"name":"n","other":1}`, "n"},
		{"default all", nil, `{"id":7,"title":"t","name":"n"}`, "n | t | 7"},
		{"explicit missing", []string{"a", "b"}, `{"a":"x"}`, "x | "},
		{"explicit nested", []string{"a.b"}, `{"a":{"b":true}}`, "true"},
		{"explicit object", []string{"a"}, `{"a":{"b": 1}}`, `{"b":1}`},
		{"explicit null", []string{"a"}, `{"a":null}`, "null"},
		{"blank props ignored", []string{" ", ""}, `{"name":"n"}`, "n"},
		{"scalar", nil, `"just text"`, "just text"},
		{"array", nil, `[1, 2]`, "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAdapter(tt.props...).Display(gjson.Parse(tt.json))
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	inner := errors.New("bad")
	err := &DecodeError{Format: FormatYAML, Index: 2, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected DecodeError to unwrap")
	}
	if err.Error() != "decode yaml value 2: bad" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
