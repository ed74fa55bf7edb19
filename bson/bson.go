// Package bson provides an order-preserving BSON codec for roster definitions.
//
// Definitions are BSON documents whose element order is the declaration order.
package bson

import (
	"fmt"
	"math"

	"github.com/zoobzio/roster"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bsonCodec implements roster.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() roster.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes entries as a BSON document in entry order.
// Unsigned values above math.MaxInt64 have no BSON representation.
func (c *bsonCodec) Marshal(entries []roster.Entry) ([]byte, error) {
	doc := make(bson.D, 0, len(entries))
	for _, e := range entries {
		v := e.Value
		if u, ok := v.(uint64); ok {
			if u > math.MaxInt64 {
				return nil, fmt.Errorf("entry %s: %d overflows int64", e.Name, u)
			}
			v = int64(u)
		}
		doc = append(doc, bson.E{Key: e.Name, Value: v})
	}
	return bson.Marshal(doc)
}

// Unmarshal decodes a BSON document into entries in element order.
func (c *bsonCodec) Unmarshal(data []byte) ([]roster.Entry, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make([]roster.Entry, 0, len(doc))
	for _, e := range doc {
		entries = append(entries, roster.Entry{Name: e.Key, Value: scalar(e.Value)})
	}
	return entries, nil
}

// opaque holds a BSON value that has no enumerable kind.
type opaque struct {
	value any
}

// scalar passes enumerable BSON values through unchanged.
// Typed values such as DateTime or Symbol are wrapped so they are never
// mistaken for numbers or strings.
func scalar(v any) any {
	switch v.(type) {
	case nil, bool, int32, int64, float64, string:
		return v
	case primitive.D, primitive.A:
		return v
	default:
		return opaque{value: v}
	}
}
