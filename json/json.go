// Package json provides an order-preserving JSON codec for roster definitions.
//
// Definitions are JSON objects whose member order is the declaration order:
//
//	{"sunday": 0, "monday": 1, "tuesday": 2}
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/zoobzio/roster"
)

// jsonCodec implements roster.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() roster.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes entries as a JSON object, members in entry order.
func (c *jsonCodec) Marshal(entries []roster.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON object into entries in member order.
// Integral numbers decode as int64, or uint64 above math.MaxInt64;
// other numbers decode as float64.
func (c *jsonCodec) Unmarshal(data []byte) ([]roster.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("json: expected object, got %v", tok)
	}

	entries := []roster.Entry{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected member name, got %v", tok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		value, err := number(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, roster.Entry{Name: name, Value: value})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("json: unexpected %v after object", tok)
	}

	return entries, nil
}

// number converts json.Number to int64, uint64 or float64.
// Other values pass through. Numbers beyond float64 range are an error.
func number(v any) (any, error) {
	n, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("json: number %s: %w", n, err)
	}
	return f, nil
}
