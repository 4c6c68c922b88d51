package ir

import "testing"

func TestFromYAMLKeyOrder(t *testing.T) {
	y, err := FromYAML([]byte("z: 1\na: two\nm:\n  - true\n  - null\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range want {
		if y.Fields[i] != f {
			t.Fatalf("got %v, want %v", y.Fields, want)
		}
	}
	if MustJSON(y) != `{"z":1,"a":"two","m":[true,null]}` {
		t.Fatalf("got %s", MustJSON(y))
	}
}

func TestFromYAMLAcceptsJSON(t *testing.T) {
	y, err := FromYAML([]byte(`{"a": 1.5, "b": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if MustJSON(y) != `{"a":1.5,"b":"x"}` {
		t.Fatalf("got %s", MustJSON(y))
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := "b: 1\na:\n  c: x\n"
	y, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	d, err := y.MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != in {
		t.Fatalf("got %q, want %q", d, in)
	}
}
