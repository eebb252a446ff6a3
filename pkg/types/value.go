package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Value is one node of a resource's serializable field surface. Exactly one
// of Ref, List, Map, or Scalar is populated. References may appear at any
// depth inside compound (Map) values and ordered collections (List).
type Value struct {
	Scalar any
	Ref    *Ref
	List   []*Value
	Map    map[string]*Value
}

// Scalar wraps a plain value
func ScalarValue(v any) *Value {
	return &Value{Scalar: v}
}

// RefValue wraps a reference
func RefValue(r Ref) *Value {
	return &Value{Ref: &r}
}

// ListValue wraps an ordered collection
func ListValue(items ...*Value) *Value {
	return &Value{List: items}
}

// MapValue wraps a compound value
func MapValue(m map[string]*Value) *Value {
	return &Value{Map: m}
}

// Clone returns a deep copy of the value tree
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{Scalar: v.Scalar}
	if v.Ref != nil {
		r := *v.Ref
		out.Ref = &r
	}
	if v.List != nil {
		out.List = make([]*Value, len(v.List))
		for i, item := range v.List {
			out.List[i] = item.Clone()
		}
	}
	if v.Map != nil {
		out.Map = make(map[string]*Value, len(v.Map))
		for k, item := range v.Map {
			out.Map[k] = item.Clone()
		}
	}
	return out
}

// isRefMapping reports whether a YAML mapping node has the reference shape:
// a key set that is a subset of {asset, kind, name} and includes "asset".
func isRefMapping(node *yaml.Node) bool {
	hasAsset := false
	for i := 0; i < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "asset":
			hasAsset = true
		case "kind", "name":
		default:
			return false
		}
	}
	return hasAsset
}

// UnmarshalYAML implements yaml.Unmarshaler
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		var s any
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.Scalar = s
		return nil
	case yaml.SequenceNode:
		list := make([]*Value, 0, len(node.Content))
		for _, item := range node.Content {
			child := &Value{}
			if err := child.UnmarshalYAML(item); err != nil {
				return err
			}
			list = append(list, child)
		}
		v.List = list
		return nil
	case yaml.MappingNode:
		if isRefMapping(node) {
			ref := &Ref{}
			if err := node.Decode(ref); err != nil {
				return err
			}
			v.Ref = ref
			return nil
		}
		m := make(map[string]*Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			child := &Value{}
			if err := child.UnmarshalYAML(node.Content[i+1]); err != nil {
				return err
			}
			m[node.Content[i].Value] = child
		}
		v.Map = m
		return nil
	default:
		return fmt.Errorf("unsupported YAML node kind %d", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler
func (v *Value) MarshalYAML() (any, error) {
	switch {
	case v.Ref != nil:
		return v.Ref, nil
	case v.List != nil:
		return v.List, nil
	case v.Map != nil:
		return v.Map, nil
	default:
		return v.Scalar, nil
	}
}
