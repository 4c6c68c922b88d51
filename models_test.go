package fieldwise

import (
	"errors"

	"github.com/fieldwise/fieldwise/ir"
	"github.com/fieldwise/fieldwise/schema"
)

type address struct {
	Street string
	City   *string
}

var addressSpec = schema.MustRegister(&schema.Spec{
	Name: "test.address",
	Fields: []*schema.Field{
		{
			Name:     "street",
			Type:     ir.StringType,
			Required: true,
			Rules: []schema.Rule{
				schema.MustExpr(`this != ""`, "must not be empty"),
			},
			New: func() any { return new(string) },
			Get: func(m any) any { return m.(*address).Street },
			Set: func(m, v any) { m.(*address).Street = *v.(*string) },
		},
		{
			Name:     "city",
			Type:     ir.StringType,
			Nullable: true,
			New:      func() any { return new(string) },
			Get:      func(m any) any { return m.(*address).City },
			Set: func(m, v any) {
				a := m.(*address)
				if v == nil {
					a.City = nil
					return
				}
				a.City = v.(*string)
			},
		},
	},
	Check: func(m any) error {
		if m.(*address).Street == "nowhere" {
			return errors.New("street does not exist")
		}
		return nil
	},
})

func (a *address) Spec() *schema.Spec { return addressSpec }

type user struct {
	Name string
	Age  *int
	Tags []string
	Addr *address

	updates [][]string
}

var userSpec = schema.MustRegister(&schema.Spec{
	Name: "test.user",
	Fields: []*schema.Field{
		{
			Name:     "name",
			Type:     ir.StringType,
			Required: true,
			Rules: []schema.Rule{
				schema.MustExpr(`this != ""`, "must not be empty"),
			},
			New: func() any { return new(string) },
			Get: func(m any) any { return m.(*user).Name },
			Set: func(m, v any) { m.(*user).Name = *v.(*string) },
		},
		{
			Name:     "age",
			Type:     ir.NumberType,
			Nullable: true,
			Rules: []schema.Rule{
				schema.MustExpr(`this >= 0`, "must not be negative"),
			},
			New: func() any { return new(int) },
			Get: func(m any) any { return m.(*user).Age },
			Set: func(m, v any) {
				u := m.(*user)
				if v == nil {
					u.Age = nil
					return
				}
				u.Age = v.(*int)
			},
		},
		{
			Name: "tags",
			Type: ir.ArrayType,
			New:  func() any { return new([]string) },
			Get:  func(m any) any { return m.(*user).Tags },
			Set: func(m, v any) {
				u := m.(*user)
				if v == nil {
					u.Tags = nil
					return
				}
				u.Tags = *v.(*[]string)
			},
		},
		{
			Name:     "addr",
			Type:     ir.ObjectType,
			Nullable: true,
			Nested:   true,
			New:      func() any { return &address{} },
			Get:      func(m any) any { return m.(*user).Addr },
			Set: func(m, v any) {
				u := m.(*user)
				if v == nil {
					u.Addr = nil
					return
				}
				u.Addr = v.(*address)
			},
		},
	},
	Check: func(m any) error {
		if m.(*user).Name == "root" {
			return errors.New("reserved name")
		}
		return nil
	},
})

func (u *user) Spec() *schema.Spec { return userSpec }

func (u *user) Updated(changed []string) {
	u.updates = append(u.updates, changed)
}

func (u *user) CloneModel() Model {
	cp := *u
	cp.Tags = append([]string(nil), u.Tags...)
	if u.Age != nil {
		age := *u.Age
		cp.Age = &age
	}
	if u.Addr != nil {
		addr := *u.Addr
		if u.Addr.City != nil {
			city := *u.Addr.City
			addr.City = &city
		}
		cp.Addr = &addr
	}
	cp.updates = nil
	return &cp
}

type empty struct{}

var emptySpec = schema.MustRegister(&schema.Spec{Name: "test.empty"})

func (e *empty) Spec() *schema.Spec { return emptySpec }

// widget carries a field with two plain predicate rules that can fail at
// once.
type widget struct {
	Label string
}

var widgetSpec = schema.MustRegister(&schema.Spec{
	Name: "test.widget",
	Fields: []*schema.Field{
		{
			Name: "label",
			Type: ir.StringType,
			Rules: []schema.Rule{
				schema.RuleFunc("must not start with x", func(v any) bool {
					s := v.(string)
					return len(s) == 0 || s[0] != 'x'
				}),
				schema.RuleFunc("must be short", func(v any) bool {
					return len(v.(string)) <= 3
				}),
			},
			New: func() any { return new(string) },
			Get: func(m any) any { return m.(*widget).Label },
			Set: func(m, v any) { m.(*widget).Label = *v.(*string) },
		},
	},
})

func (w *widget) Spec() *schema.Spec { return widgetSpec }
