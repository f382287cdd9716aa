package interp

import (
	"reflect"
	"testing"
)

func TestEnvironment(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("x", IntValue{1})
	globals.Define("a", StringValue{"dış"})

	frame := globals.Extend()
	if frame.parent != globals {
		t.Fatal("expected the frame's parent to be the global environment")
	}

	frame.Define("a", StringValue{"iç"})
	if v, _ := frame.Get("a"); v.(StringValue).Val != "iç" {
		t.Errorf("expected shadowed value 'iç', got %s", Format(v))
	}
	if v, _ := globals.Get("a"); v.(StringValue).Val != "dış" {
		t.Errorf("expected global value 'dış', got %s", Format(v))
	}

	if !frame.Assign("x", IntValue{2}) {
		t.Fatal("expected assignment to reach the global 'x'")
	}
	if v, _ := globals.Get("x"); v.(IntValue).Val != 2 {
		t.Errorf("expected global 'x' to be 2, got %s", Format(v))
	}

	if frame.Assign("yok", IntValue{0}) {
		t.Error("expected assignment to an unbound name to fail")
	}
	if _, ok := frame.Get("yok"); ok {
		t.Error("expected 'yok' to stay unbound")
	}

	if keys := globals.Keys(); !reflect.DeepEqual(keys, []string{"a", "x"}) {
		t.Errorf("expected [a x], got %v", keys)
	}
	if keys := frame.Keys(); !reflect.DeepEqual(keys, []string{"a"}) {
		t.Errorf("expected [a], got %v", keys)
	}
}
