/*
File    : lumen/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "testing"

func TestIntegerInspect(t *testing.T) {
	i := &Integer{Value: 42}
	if i.Inspect() != "42" {
		t.Fatalf("wrong inspect, got=%q", i.Inspect())
	}
	if i.Type() != INTEGER {
		t.Fatalf("wrong type, got=%q", i.Type())
	}
}

func TestBooleanSingletons(t *testing.T) {
	if NativeBool(true) != TRUE {
		t.Fatal("NativeBool(true) must return the TRUE singleton")
	}
	if NativeBool(false) != FALSE {
		t.Fatal("NativeBool(false) must return the FALSE singleton")
	}
}

func TestArrayAliasingSharesElements(t *testing.T) {
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	alias := arr
	alias.Elements[0] = &Integer{Value: 99}
	if arr.Elements[0].(*Integer).Value != 99 {
		t.Fatal("mutating through an alias must be visible on the original")
	}
}

func TestStringInspectIsRawValue(t *testing.T) {
	s := &String{Value: "hello"}
	if s.Inspect() != "hello" {
		t.Fatalf("wrong inspect, got=%q", s.Inspect())
	}
}

func TestReturnValueInspectDelegates(t *testing.T) {
	rv := &ReturnValue{Value: &Integer{Value: 7}}
	if rv.Inspect() != "7" {
		t.Fatalf("wrong inspect, got=%q", rv.Inspect())
	}
	if rv.Type() != RETURN_VALUE {
		t.Fatalf("wrong type, got=%q", rv.Type())
	}
}
