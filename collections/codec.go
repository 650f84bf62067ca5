package collections

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes the items as a JSON array when the keys are exactly
// 0 … n-1 and as an object, in key order, otherwise. Values that cannot be
// represented (reference cycles, NaN, channels, …) produce an
// [ErrSerialization] error.
func (c *Collection) ToJSON() ([]byte, error) {
	out, err := arr.EncodeJSON(c.items)
	if err != nil {
		return nil, serializationError("ToJSON", err)
	}
	return out, nil
}

// FromJSON decodes a JSON document into a Collection. Object member order
// is preserved; nested arrays and objects become *arr.Map values; integral
// numbers become int. A scalar document yields a one-item collection.
func FromJSON(data []byte, opts ...Option) (*Collection, error) {
	v, err := arr.DecodeJSON(data)
	if err != nil {
		return nil, serializationError("FromJSON", err)
	}
	return From(v, opts...), nil
}

// MarshalJSON implements json.Marshaler.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// array or object.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var m arr.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return serializationError("UnmarshalJSON", err)
	}
	c.items = &m
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// ToYAML encodes the items as a YAML sequence or mapping with the same
// list/object rule as ToJSON.
func (c *Collection) ToYAML() ([]byte, error) {
	out, err := arr.EncodeYAML(c.items)
	if err != nil {
		return nil, serializationError("ToYAML", err)
	}
	return out, nil
}

// FromYAML decodes a single YAML document into a Collection, keeping
// mapping order. An empty document yields an empty collection.
func FromYAML(data []byte, opts ...Option) (*Collection, error) {
	v, err := arr.DecodeYAML(data)
	if err != nil {
		return nil, serializationError("FromYAML", err)
	}
	return From(v, opts...), nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Collection) MarshalYAML() (any, error) {
	node, err := arr.ToYAMLNode(c.items)
	if err != nil {
		return nil, serializationError("MarshalYAML", err)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	var m arr.Map
	if err := m.UnmarshalYAML(node); err != nil {
		return serializationError("UnmarshalYAML", err)
	}
	c.items = &m
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings
// ─────────────────────────────────────────────────────────────────────────────

// String returns the JSON encoding of the items, or a go-spew rendering of
// the values when they cannot be encoded. It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return dumper.Sprint(c.ToSlice())
	}
	return string(b)
}

// Implode flattens the items depth-first, descending into every nested
// array-like, and joins the scalars with glue. Scalars are rendered the way
// PHP casts them to strings: nil and false become "", true becomes "1" and
// floats use their shortest exact form. A container that contains itself
// produces an [ErrSerialization] error wrapping [arr.ErrCycle].
//
//	collections.New(1, []any{2, 3}, true, nil).Implode(",") // "1,2,3,1,"
func (c *Collection) Implode(glue string) (string, error) {
	var parts []string
	if err := implodeInto(&parts, c, map[ref]bool{}); err != nil {
		return "", serializationError("Implode", err)
	}
	return strings.Join(parts, glue), nil
}

func implodeInto(parts *[]string, v any, seen map[ref]bool) error {
	if ptr, ok := reference(v); ok {
		if seen[ptr] {
			return fmt.Errorf("%w: %T", arr.ErrCycle, v)
		}
		seen[ptr] = true
		defer delete(seen, ptr)
	}
	seq, _ := arr.Entries(v)
	for _, item := range seq {
		if arr.IsArrayLike(item) {
			if err := implodeInto(parts, item, seen); err != nil {
				return err
			}
			continue
		}
		*parts = append(*parts, scalarString(item))
	}
	return nil
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "1"
		}
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.Abs(f) >= 1e15:
		return strings.ToUpper(strconv.FormatFloat(f, 'g', -1, bits))
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
