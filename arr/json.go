package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
)

// EncodeJSON returns the JSON encoding of v. Array-likes whose keys are
// exactly 0 … n-1 become JSON arrays; every other array-like becomes an
// object whose members keep the container's order. Scalars are encoded with
// encoding/json, except that integral floats keep a fraction (1.0, not 1).
//
// Encoding fails with [ErrCycle] when a container contains itself and with
// [ErrUnsupportedValue] for values encoding/json rejects (NaN, channels, …).
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := &jsonEncoder{buf: &buf, seen: make(map[uintptr]bool)}
	if err := enc.encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	return EncodeJSON(m)
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// array or object; member order is preserved.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: expected a JSON array or object, got %T", ErrUnsupportedValue, v)
	}
	*m = *decoded
	return nil
}

type jsonEncoder struct {
	buf  *bytes.Buffer
	seen map[uintptr]bool
}

func (e *jsonEncoder) encode(v any) error {
	switch x := v.(type) {
	case nil:
		e.buf.WriteString("null")
		return nil
	case json.Marshaler:
		if _, isMap := x.(*Map); !isMap {
			if _, iterable := x.(Iterable); !iterable {
				return e.scalar(v)
			}
		}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %v", ErrUnsupportedValue, x)
		}
	case []byte:
		return e.scalar(v)
	}

	seq, ok := Entries(v)
	if !ok {
		return e.scalar(v)
	}

	if ptr, tracked := identity(v); tracked {
		if e.seen[ptr] {
			return fmt.Errorf("%w: %T", ErrCycle, v)
		}
		e.seen[ptr] = true
		defer delete(e.seen, ptr)
	}

	var keys, vals []any
	list := true
	for k, item := range seq {
		if i, isInt := k.(int); !isInt || i != len(keys) {
			list = false
		}
		keys = append(keys, k)
		vals = append(vals, item)
	}

	if list {
		e.buf.WriteByte('[')
		for i, item := range vals {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.encode(item); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
		return nil
	}

	e.buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		name, _ := json.Marshal(KeyString(k))
		e.buf.Write(name)
		e.buf.WriteByte(':')
		if err := e.encode(vals[i]); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *jsonEncoder) scalar(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		var cyc *json.UnsupportedValueError
		if errors.As(err, &cyc) && reflect.ValueOf(v).Kind() == reflect.Pointer {
			return fmt.Errorf("%w: %v", ErrCycle, err)
		}
		return fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	if k := reflect.ValueOf(v).Kind(); k == reflect.Float32 || k == reflect.Float64 {
		b = floatLiteral(b)
	}
	e.buf.Write(b)
	return nil
}

// floatLiteral adds ".0" to an integral float so that it decodes back as a
// float rather than an int.
func floatLiteral(b []byte) []byte {
	if bytes.ContainsAny(b, ".eE") {
		return b
	}
	return append(b, ".0"...)
}

// DecodeJSON parses a JSON document into plain values: objects and arrays
// become *Map (objects keep member order, keys are normalized), numbers
// written without a fraction or exponent that fit in an int become int, other
// numbers float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid JSON: trailing data", ErrUnsupportedValue)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Store(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			m := NewMap()
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Append(val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return decodeNumber(t), nil
	}
	return tok, nil
}

func decodeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n
}
