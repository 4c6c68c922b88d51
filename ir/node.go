// Package ir holds the value tree the engine consumes: parsed JSON or YAML
// documents with object key order preserved.
package ir

type Node struct {
	Type Type

	// Fields and Values hold object members in document order; Fields is
	// empty for arrays, where Values alone carries the elements.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = append([]string(nil), y.Fields...)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dst.Values[i] = yv.Clone()
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

// Lookup returns the value of the named object member, or nil.
func (y *Node) Lookup(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces or appends the named object member.
func (y *Node) Set(field string, v *Node) {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}
