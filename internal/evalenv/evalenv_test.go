package evalenv

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/values"
)

func TestLookupInnermostWins(t *testing.T) {
	root := NewRoot(map[string]values.Value{"x": values.Int(1)})
	outer := root.Bind("x", values.Int(2))
	inner := outer.Bind("x", values.Int(3))

	v, ok := inner.GetOpt("x")
	if !ok || v != values.Int(3) {
		t.Fatalf("expected innermost binding 3, got %v (ok=%v)", v, ok)
	}
	v, ok = outer.GetOpt("x")
	if !ok || v != values.Int(2) {
		t.Fatalf("expected outer binding 2, got %v (ok=%v)", v, ok)
	}
}

func TestGetOptMissing(t *testing.T) {
	root := NewRoot(nil)
	if _, ok := root.GetOpt("nope"); ok {
		t.Fatalf("expected miss")
	}
}

func TestMutableFrameRebind(t *testing.T) {
	root := NewRoot(nil)
	m := root.BindMutable("row")
	m.Set(values.Int(1))
	if v, _ := m.GetOpt("row"); v != values.Int(1) {
		t.Fatalf("got %v", v)
	}
	m.Set(values.Int(2))
	if v, _ := m.GetOpt("row"); v != values.Int(2) {
		t.Fatalf("got %v", v)
	}
}

func TestFixForbidsMutation(t *testing.T) {
	root := NewRoot(nil)
	m := root.BindMutable("row")
	m.Set(values.Int(1))
	m.Fix()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mutation after Fix")
		}
	}()
	m.Set(values.Int(2))
}

func TestVisitShadowingOrder(t *testing.T) {
	root := NewRoot(map[string]values.Value{"x": values.Int(0)})
	inner := root.Bind("x", values.Int(1))

	var seen []values.Value
	inner.Visit(func(name string, v values.Value) {
		if name == "x" {
			seen = append(seen, v)
		}
	})
	if len(seen) != 2 || seen[0] != values.Int(1) || seen[1] != values.Int(0) {
		t.Fatalf("expected shadower then shadowed, got %v", seen)
	}
}

func TestMutablePatFrameSetOpt(t *testing.T) {
	root := NewRoot(nil)
	binder := func(arg values.Value, consume func(string, values.Value)) bool {
		i, ok := arg.(values.Int)
		if !ok || i <= 0 {
			return false
		}
		consume("n", arg)
		return true
	}
	m := root.BindMutablePat(binder)

	if !m.SetOpt(values.Int(5)) {
		t.Fatalf("expected positive int to match")
	}
	if v, _ := m.GetOpt("n"); v != values.Int(5) {
		t.Fatalf("got %v", v)
	}
	if m.SetOpt(values.Int(-1)) {
		t.Fatalf("expected negative int to fail match")
	}
}
