package diag

import (
	"testing"

	"lumen/internal/source"
)

func TestArgNamesStayUnique(t *testing.T) {
	d := New(SevError, "some_template", source.Span{})
	d.Arg("count", IntArg(1))
	d.Arg("cause", StrArg("x"))
	d.Arg("count", IntArg(2))

	args := d.Args()
	if len(args) != 2 {
		t.Fatalf("args = %d, want 2 (rebinding must overwrite)", len(args))
	}
	v, ok := d.LookupArg("count")
	if !ok || v.Number().String() != "2" {
		t.Fatalf("count = %v, %v", v, ok)
	}
}

func TestArgsInsertionOrder(t *testing.T) {
	d := New(SevError, "some_template", source.Span{})
	d.Arg("b", IntArg(1)).Arg("a", IntArg(2)).Arg("c", IntArg(3))
	names := []string{"b", "a", "c"}
	for i, a := range d.Args() {
		if a.Name != names[i] {
			t.Fatalf("arg %d = %q, want %q", i, a.Name, names[i])
		}
	}
}

func TestArgsReturnsCopy(t *testing.T) {
	d := New(SevError, "some_template", source.Span{})
	d.Arg("a", IntArg(1))
	args := d.Args()
	args[0].Name = "mutated"
	if d.Args()[0].Name != "a" {
		t.Fatal("Args() must return a copy")
	}
}

func TestLookupArgMissing(t *testing.T) {
	d := New(SevError, "some_template", source.Span{})
	if _, ok := d.LookupArg("absent"); ok {
		t.Fatal("LookupArg on empty diagnostic must miss")
	}
}

func TestArgOfUsesCapability(t *testing.T) {
	d := New(SevError, "some_template", source.Span{})
	d.ArgOf("names", NameList{"foo"})
	v, ok := d.LookupArg("names")
	if !ok || v.Kind() != ArgStrList {
		t.Fatalf("names = %v, %v", v, ok)
	}
}
