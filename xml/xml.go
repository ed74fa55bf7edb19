// Package xml provides an order-preserving XML codec for roster definitions.
//
// Definitions are written as a flat list of entries. The kind attribute
// records the value kind so scalars survive the text round trip:
//
//	<enum>
//	  <entry name="sunday" kind="number">0</entry>
//	  <entry name="label" kind="string">Sunday</entry>
//	</enum>
//
// An entry without a kind attribute is read as a string. An entry with an
// unknown kind carries no value and is dropped when the registry is built.
package xml

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/zoobzio/roster"
)

// xmlCodec implements roster.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() roster.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

type document struct {
	XMLName xml.Name  `xml:"enum"`
	Entries []element `xml:"entry"`
}

type element struct {
	Name  string `xml:"name,attr"`
	Kind  string `xml:"kind,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Marshal encodes entries as an enum document in entry order.
func (c *xmlCodec) Marshal(entries []roster.Entry) ([]byte, error) {
	doc := document{Entries: make([]element, 0, len(entries))}
	for _, e := range entries {
		el, err := encodeElement(e)
		if err != nil {
			return nil, err
		}
		doc.Entries = append(doc.Entries, el)
	}
	return xml.Marshal(doc)
}

// Unmarshal decodes an enum document into entries in document order.
func (c *xmlCodec) Unmarshal(data []byte) ([]roster.Entry, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make([]roster.Entry, 0, len(doc.Entries))
	for _, el := range doc.Entries {
		value, err := decodeValue(el)
		if err != nil {
			return nil, err
		}
		entries = append(entries, roster.Entry{Name: el.Name, Value: value})
	}
	return entries, nil
}

func encodeElement(e roster.Entry) (element, error) {
	el := element{Name: e.Name}
	switch v := e.Value.(type) {
	case bool:
		el.Kind, el.Value = string(roster.KindBool), strconv.FormatBool(v)
	case int64:
		el.Kind, el.Value = string(roster.KindNumber), strconv.FormatInt(v, 10)
	case uint64:
		el.Kind, el.Value = string(roster.KindNumber), strconv.FormatUint(v, 10)
	case float64:
		el.Kind, el.Value = string(roster.KindNumber), strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		el.Kind, el.Value = string(roster.KindString), v
	default:
		return el, fmt.Errorf("entry %s: unsupported value type %T", e.Name, e.Value)
	}
	return el, nil
}

func decodeValue(el element) (any, error) {
	switch roster.Kind(el.Kind) {
	case "", roster.KindString:
		return el.Value, nil
	case roster.KindBool:
		b, err := strconv.ParseBool(el.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", el.Name, err)
		}
		return b, nil
	case roster.KindNumber:
		if i, err := strconv.ParseInt(el.Value, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(el.Value, 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(el.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", el.Name, err)
		}
		return f, nil
	default:
		return nil, nil
	}
}
