// Package msgpack provides an order-preserving MessagePack codec for roster definitions.
//
// Definitions are MessagePack maps written in declaration order.
package msgpack

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/roster"
)

// msgpackCodec implements roster.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() roster.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes entries as a MessagePack map in entry order.
func (c *msgpackCodec) Marshal(entries []roster.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	if err := enc.EncodeMapLen(len(entries)); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := enc.EncodeString(e.Name); err != nil {
			return nil, err
		}
		if err := enc.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.Name, err)
		}
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a MessagePack map into entries in wire order.
func (c *msgpackCodec) Unmarshal(data []byte) ([]roster.Entry, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)

	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}

	entries := make([]roster.Entry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("msgpack: entry %d name: %w", i, err)
		}
		value, err := dec.DecodeInterface()
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", name, err)
		}
		entries = append(entries, roster.Entry{Name: name, Value: value})
	}

	if r.Len() > 0 {
		return nil, fmt.Errorf("msgpack: %d unexpected bytes after map", r.Len())
	}

	return entries, nil
}
