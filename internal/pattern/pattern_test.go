package pattern

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/values"
)

func TestBindRecurseTuple(t *testing.T) {
	p := Tuple(Ident("x"), Ident("y"))
	arg := values.NewSeq(values.Int(3), values.Int(4))

	got := map[string]values.Value{}
	ok := BindRecurse(p, arg, func(name string, v values.Value) { got[name] = v })
	if !ok {
		t.Fatalf("expected match")
	}
	if got["x"] != values.Int(3) || got["y"] != values.Int(4) {
		t.Fatalf("unexpected bindings: %v", got)
	}
}

func TestBindRecurseConsAndWildcard(t *testing.T) {
	p := Cons(Ident("h"), Ident("t"))
	arg := values.NewSeq(values.Int(1), values.Int(2), values.Int(3))

	got := map[string]values.Value{}
	ok := BindRecurse(p, arg, func(name string, v values.Value) { got[name] = v })
	if !ok {
		t.Fatalf("expected match")
	}
	tail, ok := got["t"].(values.Seq)
	if !ok || len(tail) != 2 {
		t.Fatalf("expected 2-element tail, got %v", got["t"])
	}

	empty := values.NewSeq()
	if BindRecurse(p, empty, func(string, values.Value) {}) {
		t.Fatalf("cons pattern should not match empty sequence")
	}
}

func TestBindRecurseConstructors(t *testing.T) {
	nilCtor := Ctor0("NIL")
	if !BindRecurse(nilCtor, values.NewConstructor0("NIL"), func(string, values.Value) {}) {
		t.Fatalf("expected NIL to match")
	}
	if BindRecurse(nilCtor, values.NewConstructor0("CONS"), func(string, values.Value) {}) {
		t.Fatalf("expected CONS tag to not match NIL pattern")
	}

	consCtor := Ctor1("SOME", Ident("x"))
	var bound values.Value
	ok := BindRecurse(consCtor, values.Some(values.Int(5)), func(name string, v values.Value) {
		if name == "x" {
			bound = v
		}
	})
	if !ok || bound != values.Int(5) {
		t.Fatalf("expected SOME 5 to bind x=5, got ok=%v bound=%v", ok, bound)
	}
}

func TestBindRecursePartialFailureIsSpeculative(t *testing.T) {
	// (x, true) against (1, false): first element binds x, second fails.
	// The caller is expected to discard the speculative x binding.
	p := Tuple(Ident("x"), BoolLit(true))
	arg := values.NewSeq(values.Int(1), values.Bool(false))

	var sawX bool
	ok := BindRecurse(p, arg, func(name string, v values.Value) {
		if name == "x" {
			sawX = true
		}
	})
	if ok {
		t.Fatalf("expected overall match to fail")
	}
	if !sawX {
		t.Fatalf("expected speculative binding of x before the failure")
	}
}

func TestNames(t *testing.T) {
	p := Tuple(Ident("a"), As("b", Ident("c")))
	names := Names(p)
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v want %v", names, want)
		}
	}
}
