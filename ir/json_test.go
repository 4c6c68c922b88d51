package ir

import (
	"testing"
)

type jsonTest struct {
	in  string
	out string
}

var jsonTests = []jsonTest{
	{in: `null`},
	{in: `true`},
	{in: `false`},
	{in: `"hello"`},
	{in: `42`},
	{in: `-3.5`},
	{in: `[]`},
	{in: `[1,"two",null]`},
	{in: `{}`},
	{in: `{"b":1,"a":2}`},
	{in: `{"outer":{"z":null,"a":[true]}}`},
	{in: `{"a":{"b":{"c":[{"d":1},2]}},"e":"f"}`},
	{in: `{"n":1e3}`, out: `{"n":1000}`},
}

func TestJSONRoundTrip(t *testing.T) {
	for _, tt := range jsonTests {
		y, err := FromJSON([]byte(tt.in))
		if err != nil {
			t.Errorf("parse %q: %v", tt.in, err)
			continue
		}
		d, err := y.MarshalJSON()
		if err != nil {
			t.Errorf("encode %q: %v", tt.in, err)
			continue
		}
		want := tt.out
		if want == "" {
			want = tt.in
		}
		if string(d) != want {
			t.Errorf("round trip %q: got %q", tt.in, d)
		}
	}
}

func TestJSONKeyOrder(t *testing.T) {
	y, err := FromJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if len(y.Fields) != len(want) {
		t.Fatalf("got %v", y.Fields)
	}
	for i, f := range want {
		if y.Fields[i] != f {
			t.Fatalf("got %v, want %v", y.Fields, want)
		}
	}
}

func TestJSONNestedKeys(t *testing.T) {
	// key strings must survive the recursive descent into their values
	y, err := FromJSON([]byte(`{"user":{"name":"ada","addr":{"street":"main"}},"rev":5}`))
	if err != nil {
		t.Fatal(err)
	}
	user := y.Lookup("user")
	if user == nil || user.Type != ObjectType {
		t.Fatalf("user: %v, fields %v", user, y.Fields)
	}
	if v := user.Lookup("name"); v == nil || v.String != "ada" {
		t.Fatalf("user.name: %v, fields %v", v, user.Fields)
	}
	addr := user.Lookup("addr")
	if addr == nil || addr.Lookup("street") == nil {
		t.Fatalf("user.addr: %v", addr)
	}
	if v := y.Lookup("rev"); v == nil || v.Int64 == nil || *v.Int64 != 5 {
		t.Fatalf("rev: %v", v)
	}
}

func TestJSONErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a"}`, `[1,]`, `nul`} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("parse %q: no error", in)
		}
	}
}

func TestLookupAndSet(t *testing.T) {
	y, err := FromJSON([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if v := y.Lookup("a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Fatalf("lookup a: %v", v)
	}
	if v := y.Lookup("b"); v != nil {
		t.Fatalf("lookup b: %v", v)
	}
	y.Set("b", FromString("x"))
	y.Set("a", FromBool(true))
	if v := y.Lookup("b"); v == nil || v.String != "x" {
		t.Fatalf("lookup b after set: %v", v)
	}
	if v := y.Lookup("a"); v == nil || v.Type != BoolType {
		t.Fatalf("lookup a after set: %v", v)
	}
}

func TestClone(t *testing.T) {
	y, err := FromJSON([]byte(`{"a": [1, {"b": null}], "c": 1.5}`))
	if err != nil {
		t.Fatal(err)
	}
	cp := y.Clone()
	cp.Set("a", Null())
	if y.Lookup("a").Type != ArrayType {
		t.Fatal("clone shares structure")
	}
	if MustJSON(cp) != `{"a":null,"c":1.5}` {
		t.Fatalf("got %s", MustJSON(cp))
	}
}
