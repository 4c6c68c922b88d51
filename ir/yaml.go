package ir

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML (or JSON, which YAML subsumes) document, preserving
// mapping key order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// MarshalYAML encodes the node as YAML, keeping object key order.
func (y *Node) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(ToAny(y))
}

// FromAny builds a node from a decoded Go value.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		for _, item := range x {
			y, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	case yaml.MapSlice:
		res := &Node{Type: ObjectType}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", item.Key)
			}
			y, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, y)
		}
		return res, nil
	case map[string]any:
		// unordered input, make the node deterministic
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := &Node{Type: ObjectType}
		for _, k := range keys {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, y)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot build node from %T", v)
	}
}

// ToAny converts the node to plain Go values, using yaml.MapSlice for objects
// so key order survives re-encoding.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		panic("number")
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToAny(y.Values[i])}
		}
		return res
	default:
		panic("ir type")
	}
}
