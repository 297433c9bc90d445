// Package wire holds the JSON helpers shared by the smig packages:
// an ordered object writer for tagged-variant documents, an order-preserving
// object reader, and lookup helpers for string-named enumerations.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object writes a JSON object whose keys appear in insertion order.
// The first failing Field sticks; Bytes reports it.
type Object struct {
	buf bytes.Buffer
	n   int
	err error
}

// Field appends key with the JSON encoding of v.
func (o *Object) Field(key string, v any) {
	if o.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		o.err = fmt.Errorf("wire: field %q: %w", key, err)
		return
	}
	o.Raw(key, b)
}

// Raw appends key with an already encoded value.
func (o *Object) Raw(key string, raw json.RawMessage) {
	if o.err != nil {
		return
	}
	if o.n == 0 {
		o.buf.WriteByte('{')
	} else {
		o.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(raw)
	o.n++
}

// Bytes returns the encoded object.
func (o *Object) Bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	if o.n == 0 {
		return []byte("{}"), nil
	}
	out := make([]byte, 0, o.buf.Len()+1)
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}

// Fields decodes a JSON object and calls fn for each member in document order.
func Fields(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("wire: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("wire: expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("wire: field %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// HasKey reports whether the JSON object in data has a member named key.
func HasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// Lookup returns the index of s in names. Empty names never match, so index 0
// can be reserved for an unset value.
func Lookup[T ~uint8](names []string, s string) (T, bool) {
	if s == "" {
		return 0, false
	}
	for i, n := range names {
		if n == s {
			return T(i), true
		}
	}
	return 0, false
}

// Name returns the wire name of v, or "" if v is out of range or unset.
func Name[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return ""
}

// MarshalName encodes v as its wire name, failing for unset or unknown values.
func MarshalName[T ~uint8](names []string, v T, kind string) ([]byte, error) {
	n := Name(names, v)
	if n == "" {
		return nil, fmt.Errorf("wire: %s %d has no name", kind, uint8(v))
	}
	return []byte(n), nil
}
