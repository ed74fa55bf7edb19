package roster

import (
	"context"
	"time"
)

// Codec provides content-type aware, order-preserving marshaling of entries.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes entries in order. Values are canonical:
	// bool, int64, uint64, float64 or string.
	Marshal(entries []Entry) ([]byte, error)

	// Unmarshal decodes entries in document order. Non-scalar values
	// may be returned as-is; the factory filters them.
	Unmarshal(data []byte) ([]Entry, error)
}

// Decode unmarshals a definition with c and builds a registry from it.
func Decode(c Codec, data []byte, opts ...Option) (*Registry, error) {
	ctx := context.Background()
	start := time.Now()

	entries, err := c.Unmarshal(data)
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitDecodeComplete(ctx, c.ContentType(), len(data), time.Since(start), err)
		return nil, err
	}

	r := New(entries, opts...)
	emitDecodeComplete(ctx, c.ContentType(), len(data), time.Since(start), nil)
	return r, nil
}

// Encode marshals the registry's entries with c.
//
// Only bool, number and string constants are portable across codecs;
// big integers and symbols fail with ErrUnsupportedValue.
func Encode(c Codec, r *Registry) ([]byte, error) {
	ctx := context.Background()
	start := time.Now()

	var (
		data   []byte
		retErr error
	)
	defer func() {
		emitEncodeComplete(ctx, c.ContentType(), r.typeName, len(data), time.Since(start), retErr)
	}()

	entries := make([]Entry, len(r.names))
	for i, name := range r.names {
		if !IsPortableKind(r.kinds[i]) {
			retErr = newEntryError(ErrUnsupportedValue, name, r.kinds[i])
			return nil, retErr
		}
		entries[i] = Entry{Name: name, Value: r.canon[i]}
	}

	data, retErr = c.Marshal(entries)
	if retErr != nil {
		retErr = newCodecError(ErrMarshal, retErr)
		return nil, retErr
	}
	return data, nil
}
