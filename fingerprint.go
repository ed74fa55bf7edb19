package roster

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the registry's
// ordered names, kinds and values.
//
// Registries built from equivalent definitions share a fingerprint, so
// numerically equal declarations (3 and 3.0) hash alike. Reordering,
// renaming or changing a value changes it. Symbols contribute their
// description only.
func (r *Registry) Fingerprint() string {
	h, _ := blake2b.New256(nil) // nil key never errors
	for i, name := range r.names {
		writeField(h, []byte(name))
		writeField(h, []byte(r.kinds[i]))
		writeField(h, []byte(fingerprintValue(r.canon[i])))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeField writes a length-prefixed field so adjacent fields cannot alias.
func writeField(h io.Writer, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	_, _ = h.Write(n[:])
	_, _ = h.Write(b)
}

func fingerprintValue(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case *big.Int:
		return x.String()
	case Symbol:
		return x.Description()
	default:
		return ""
	}
}
