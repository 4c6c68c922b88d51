package fieldwise

import "fmt"

// Op governs only how absent document keys are treated and how "no changes"
// is interpreted; validation and coercion are identical across kinds.
type Op int

const (
	// Create applies a document to a freshly constructed instance; absent
	// keys keep whatever the constructor left in place.
	Create Op = iota
	// Replace treats absent updatable keys as explicit nulls.
	Replace
	// Merge considers only the keys the document supplies.
	Merge
)

func (o Op) String() string {
	s, ok := map[Op]string{
		Create:  "create",
		Replace: "replace",
		Merge:   "merge",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	oo, err := ParseOp(string(d))
	if err != nil {
		return err
	}
	*o = oo
	return nil
}

func ParseOp(s string) (Op, error) {
	o, ok := map[string]Op{
		"create":  Create,
		"replace": Replace,
		"merge":   Merge,
	}[s]
	if !ok {
		return 0, fmt.Errorf("unrecognized op %q", s)
	}
	return o, nil
}

func Ops() []Op {
	return []Op{Create, Replace, Merge}
}
