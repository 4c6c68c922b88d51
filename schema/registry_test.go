package schema

import (
	"strings"
	"testing"

	"github.com/fieldwise/fieldwise/ir"
)

func strField(name string) *Field {
	return &Field{
		Name: name,
		Type: ir.StringType,
		New:  func() any { return new(string) },
		Get:  func(m any) any { return nil },
		Set:  func(m, v any) {},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	s := &Spec{Name: "registry.a", Fields: []*Field{strField("x")}}
	if err := Register(s); err != nil {
		t.Fatal(err)
	}
	if Lookup("registry.a") != s {
		t.Fatal("lookup after register")
	}
	if Lookup("registry.missing") != nil {
		t.Fatal("lookup of unregistered name")
	}
	if _, ok := All()["registry.a"]; !ok {
		t.Fatal("All misses registered spec")
	}
}

func TestRegisterRejects(t *testing.T) {
	tests := []struct {
		name string
		spec *Spec
		frag string
	}{
		{"nil", nil, "nil"},
		{"unnamed", &Spec{}, "name"},
		{
			"unnamed field",
			&Spec{Name: "registry.b", Fields: []*Field{strField("")}},
			"without a name",
		},
		{
			"duplicate field",
			&Spec{Name: "registry.c", Fields: []*Field{strField("x"), strField("x")}},
			"twice",
		},
		{
			"missing accessors",
			&Spec{Name: "registry.d", Fields: []*Field{{Name: "x", Type: ir.StringType}}},
			"New, Get and Set",
		},
	}
	for _, tt := range tests {
		err := Register(tt.spec)
		if err == nil {
			t.Errorf("%s: registered", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.frag) {
			t.Errorf("%s: got %q, want %q in it", tt.name, err, tt.frag)
		}
	}
}

func TestRegisterTwice(t *testing.T) {
	s := &Spec{Name: "registry.twice", Fields: []*Field{strField("x")}}
	if err := Register(s); err != nil {
		t.Fatal(err)
	}
	if err := Register(s); err == nil {
		t.Fatal("second registration accepted")
	}
}

func TestSpecLookupStable(t *testing.T) {
	s := &Spec{Name: "registry.stable", Fields: []*Field{strField("x"), strField("y")}}
	if s.Lookup("x") == nil || s.Lookup("y") == nil {
		t.Fatal("declared fields not found")
	}
	if s.Lookup("z") != nil {
		t.Fatal("undeclared field found")
	}
	if s.Lookup("x") != s.Lookup("x") {
		t.Fatal("lookup not stable")
	}
}
