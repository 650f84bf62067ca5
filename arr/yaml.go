package arr

import (
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EncodeYAML returns the YAML encoding of v with the same list/object duality
// as [EncodeJSON]: list-shaped containers become sequences, everything else a
// mapping in container order.
func EncodeYAML(v any) ([]byte, error) {
	node, err := ToYAMLNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return out, nil
}

// DecodeYAML parses a single YAML document. Mappings and sequences become
// *Map (mappings keep their order), scalars decode to their natural Go type.
// An empty document decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return FromYAMLNode(doc.Content[0])
}

// MarshalYAML implements yaml.Marshaler.
func (m *Map) MarshalYAML() (any, error) {
	return ToYAMLNode(m)
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a mapping or a
// sequence.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := FromYAMLNode(node)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: expected a YAML mapping or sequence, got %T", ErrUnsupportedValue, v)
	}
	*m = *decoded
	return nil
}

// ToYAMLNode converts v into a yaml.Node tree.
func ToYAMLNode(v any) (*yaml.Node, error) {
	return yamlNode(v, make(map[uintptr]bool))
}

func yamlNode(v any, seen map[uintptr]bool) (*yaml.Node, error) {
	if _, isBytes := v.([]byte); !isBytes {
		if seq, ok := Entries(v); ok {
			if ptr, tracked := identity(v); tracked {
				if seen[ptr] {
					return nil, fmt.Errorf("%w: %T", ErrCycle, v)
				}
				seen[ptr] = true
				defer delete(seen, ptr)
			}
			m := NewMap()
			for k, item := range seq {
				m.Store(k, item)
			}
			return containerNode(m, seen)
		}
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	if k := reflect.ValueOf(v).Kind(); n.Kind == yaml.ScalarNode && (k == reflect.Float32 || k == reflect.Float64) {
		n.Tag, n.Value = "!!float", string(floatLiteral([]byte(n.Value)))
	}
	return n, nil
}

func containerNode(m *Map, seen map[uintptr]bool) (*yaml.Node, error) {
	if m.IsList() {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range m.Values() {
			child, err := yamlNode(item, seen)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, item := range m.Entries() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: KeyString(k)}
		if i, isInt := k.(int); isInt {
			key.Tag, key.Value = "!!int", strconv.Itoa(i)
		}
		child, err := yamlNode(item, seen)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, key, child)
	}
	return n, nil
}

// FromYAMLNode converts a yaml.Node tree into plain values.
func FromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		m := NewMap()
		for _, child := range n.Content {
			v, err := FromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			m.Append(v)
		}
		return m, nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key any
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
			}
			v, err := FromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Store(key, v)
		}
		return m, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return v, nil
}
