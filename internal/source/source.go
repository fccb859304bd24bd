// Package source turns raw input into picker items.
//
// Three formats are understood: plain lines, JSON (an array or a stream of
// values) and YAML (one or more documents). Structured values are shown
// through an Adapter, which builds the display string from property paths.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/fuzzyselect/internal/input/fuzzy"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("unknown input format")

// maxLineSize bounds a single line of line-oriented input.
const maxLineSize = 1 << 20

// Format is an input format.
type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name. The empty string means lines.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatLines:
		return FormatLines, nil
	case FormatJSON, "ndjson", "jsonl":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DecodeError reports a value that could not be decoded.
type DecodeError struct {
	Format Format
	// Index is the position of the value in the input, counting from 0.
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s value %d: %v", e.Format, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Options configures Read.
type Options struct {
	Format Format

	// Properties are the property paths shown for structured items. Empty
	// means DefaultProperties.
	Properties []string
}

// Read decodes every item from r.
func Read(r io.Reader, opts Options) ([]fuzzy.Item, error) {
	adapter := NewAdapter(opts.Properties...)
	switch opts.Format {
	case "", FormatLines:
		return ReadLines(r)
	case FormatJSON:
		return ReadJSON(r, adapter)
	case FormatYAML:
		return ReadYAML(r, adapter)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// ReadLines returns one item per non-blank line. The item's data is the
// line itself.
func ReadLines(r io.Reader) ([]fuzzy.Item, error) {
	var items []fuzzy.Item
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, fuzzy.Item{Text: line, Data: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return items, nil
}

// ReadJSON reads a JSON array, or a sequence of JSON values separated by
// whitespace (newline-delimited JSON). A single top-level array yields one
// item per element. Item data is the compact JSON text of the value.
func ReadJSON(r io.Reader, adapter *Adapter) ([]fuzzy.Item, error) {
	var values []json.RawMessage
	dec := json.NewDecoder(r)
	for i := 0; ; i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &DecodeError{Format: FormatJSON, Index: i, Err: err}
		}
		values = append(values, raw)
	}
	return jsonItems(values, adapter), nil
}

// ReadYAML reads one or more YAML documents. A document holding a sequence
// yields one item per element; empty documents are skipped. Values are
// converted to JSON and handled as by ReadJSON.
func ReadYAML(r io.Reader, adapter *Adapter) ([]fuzzy.Item, error) {
	var values []json.RawMessage
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &DecodeError{Format: FormatYAML, Index: i, Err: err}
		}
		if doc == nil {
			continue
		}
		raw, err := json.Marshal(normalize(doc))
		if err != nil {
			return nil, &DecodeError{Format: FormatYAML, Index: i, Err: err}
		}
		values = append(values, raw)
	}
	return jsonItems(values, adapter), nil
}

func jsonItems(values []json.RawMessage, adapter *Adapter) []fuzzy.Item {
	if len(values) == 1 {
		if root := gjson.ParseBytes(values[0]); root.IsArray() {
			var items []fuzzy.Item
			root.ForEach(func(_, value gjson.Result) bool {
				items = append(items, adapter.Item(value))
				return true
			})
			return items
		}
	}
	items := make([]fuzzy.Item, 0, len(values))
	for _, raw := range values {
		items = append(items, adapter.Item(gjson.ParseBytes(bytes.TrimSpace(raw))))
	}
	return items
}

// normalize converts YAML mappings with non-string keys into
// JSON-compatible maps.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	}
	return v
}
