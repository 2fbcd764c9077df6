package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// object is a JSON object with preserved key order. The upstream API leans
// on insertion order (pandas keeps dict order), so decoding through a plain
// map would scramble columns.
type object struct {
	keys []string
	vals map[string]any
}

func newObject() *object {
	return &object{vals: make(map[string]any)}
}

func (o *object) set(key string, val any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

func (o *object) get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// CleanFunc rewrites string values during decode.
type CleanFunc func(string) string

// DecodeOption configures FromJSON.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	clean   CleanFunc
	rootKey string
}

// WithStringCleaner applies the given function to every decoded string
// value. Keys are left untouched.
func WithStringCleaner(f CleanFunc) DecodeOption {
	return func(c *decodeConfig) {
		c.clean = f
	}
}

// WithRootKey selects a key of the top-level object before building the
// table. A missing key yields an empty table.
func WithRootKey(key string) DecodeOption {
	return func(c *decodeConfig) {
		c.rootKey = key
	}
}

// FromJSON decodes an API response body into a Table. The supported shapes
// mirror what the upstream endpoints produce:
//
//   - array of objects: one row per object
//   - object of arrays: column-oriented data, scalars broadcast
//   - object of objects: statistics tables; inner keys become a "field"
//     index column, outer keys become columns
//   - object of scalars: a single row
//   - bare scalars or arrays of scalars: a single "value" column
func FromJSON(raw []byte, opts ...DecodeOption) (*Table, error) {
	cfg := &decodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	val, err := decode(raw, cfg.clean)
	if err != nil {
		return nil, err
	}

	if cfg.rootKey != "" {
		obj, ok := val.(*object)
		if !ok {
			return nil, fmt.Errorf("expected object with key %q, got %T", cfg.rootKey, val)
		}
		inner, ok := obj.get(cfg.rootKey)
		if !ok {
			return New(), nil
		}
		val = inner
	}

	return fromValue(val)
}

// DecodeDocument decodes an API response into a generic document for
// endpoints whose payload is not tabular (abundances, run details).
func DecodeDocument(raw []byte, clean CleanFunc) (map[string]any, error) {
	val, err := decode(raw, clean)
	if err != nil {
		return nil, err
	}
	obj, ok := val.(*object)
	if !ok {
		return nil, fmt.Errorf("expected object document, got %T", val)
	}
	doc, _ := toGoValue(obj).(map[string]any)
	return doc, nil
}

// decode parses raw JSON with key order and number fidelity preserved.
func decode(raw []byte, clean CleanFunc) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	val, err := decodeValue(dec, clean)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	// Trailing garbage after the document is a malformed response.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decoding response: unexpected data after document")
	}

	return val, nil
}

func decodeValue(dec *json.Decoder, clean CleanFunc) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := newObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec, clean)
				if err != nil {
					return nil, err
				}
				obj.set(key, val)
			}
			// Consume the closing brace.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := make([]any, 0)
			for dec.More() {
				val, err := decodeValue(dec, clean)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		if clean != nil {
			return clean(v), nil
		}
		return v, nil
	default:
		// json.Number, bool, or nil.
		return tok, nil
	}
}

// fromValue builds a Table from a decoded value.
func fromValue(val any) (*Table, error) {
	switch v := val.(type) {
	case []any:
		return fromArray(v)
	case *object:
		return fromObject(v)
	default:
		return New("value").Row(v), nil
	}
}

// fromArray builds a table from an array: records for objects, a single
// "value" column otherwise.
func fromArray(arr []any) (*Table, error) {
	objects := true
	for _, e := range arr {
		if _, ok := e.(*object); !ok {
			objects = false
			break
		}
	}

	if !objects {
		t := New("value")
		for _, e := range arr {
			t.Row(e)
		}
		return t, nil
	}

	// Column order: keys of the first record, unseen keys from later
	// records appended in first-seen order.
	t := New()
	for _, e := range arr {
		obj := e.(*object)
		for _, k := range obj.keys {
			if t.colIndex(k) < 0 {
				t.cols = append(t.cols, k)
			}
		}
	}
	for _, e := range arr {
		obj := e.(*object)
		cells := make([]any, len(t.cols))
		for i, c := range t.cols {
			cells[i], _ = obj.get(c)
		}
		t.rows = append(t.rows, cells)
	}
	return t, nil
}

// fromObject builds a table from a top-level object, dispatching on the
// value kinds.
func fromObject(obj *object) (*Table, error) {
	// {} is an empty table, not a zero-column row
	if len(obj.keys) == 0 {
		return New(), nil
	}

	hasArray := false
	allObjects := true
	for _, k := range obj.keys {
		switch obj.vals[k].(type) {
		case []any:
			hasArray = true
			allObjects = false
		case *object:
		default:
			allObjects = false
		}
	}

	if hasArray {
		return fromColumns(obj)
	}
	if allObjects {
		return fromNested(obj)
	}

	// Flat object of scalars: one row.
	t := New(obj.keys...)
	cells := make([]any, len(obj.keys))
	for i, k := range obj.keys {
		cells[i] = obj.vals[k]
	}
	t.rows = append(t.rows, cells)
	return t, nil
}

// fromColumns builds a table from column-oriented data. Scalar values are
// broadcast to the row count.
func fromColumns(obj *object) (*Table, error) {
	rows := 0
	for _, k := range obj.keys {
		if arr, ok := obj.vals[k].([]any); ok && len(arr) > rows {
			rows = len(arr)
		}
	}

	t := New(obj.keys...)
	for r := 0; r < rows; r++ {
		cells := make([]any, len(obj.keys))
		for i, k := range obj.keys {
			switch v := obj.vals[k].(type) {
			case []any:
				if r < len(v) {
					cells[i] = v[r]
				}
			default:
				cells[i] = v
			}
		}
		t.rows = append(t.rows, cells)
	}
	return t, nil
}

// fromNested builds a table from an object of objects: a "field" index
// column from the inner keys plus one column per outer key. This is the
// DataFrame-from-dict-of-dicts shape the statistics endpoint uses.
func fromNested(obj *object) (*Table, error) {
	var fields []string
	seen := make(map[string]bool)
	for _, outer := range obj.keys {
		inner := obj.vals[outer].(*object)
		for _, k := range inner.keys {
			if !seen[k] {
				seen[k] = true
				fields = append(fields, k)
			}
		}
	}

	t := New(append([]string{"field"}, obj.keys...)...)
	for _, f := range fields {
		cells := make([]any, len(obj.keys)+1)
		cells[0] = f
		for i, outer := range obj.keys {
			inner := obj.vals[outer].(*object)
			cells[i+1], _ = inner.get(f)
		}
		t.rows = append(t.rows, cells)
	}
	return t, nil
}
