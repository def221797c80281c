package comparator

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

func TestNaturalOrderInt(t *testing.T) {
	b := NewBuilder()
	cmp := b.Build(types.Primitive("int"))
	if cmp(values.Int(1), values.Int(2)) >= 0 {
		t.Fatalf("expected 1 < 2")
	}
	if cmp(values.Int(2), values.Int(1)) <= 0 {
		t.Fatalf("expected 2 > 1")
	}
	if cmp(values.Int(1), values.Int(1)) != 0 {
		t.Fatalf("expected 1 == 1")
	}
}

func TestTupleLexicographic(t *testing.T) {
	b := NewBuilder()
	tupType := types.Tuple("int*int", types.Primitive("int"), types.Primitive("int"))
	cmp := b.Build(tupType)

	a := values.NewSeq(values.Int(1), values.Int(9))
	bb := values.NewSeq(values.Int(1), values.Int(2))
	if cmp(a, bb) <= 0 {
		t.Fatalf("expected (1,9) > (1,2)")
	}

	c := values.NewSeq(values.Int(0), values.Int(99))
	if cmp(c, a) >= 0 {
		t.Fatalf("expected (0,99) < (1,9): first component dominates")
	}
}

func TestListShorterIsLessOnTie(t *testing.T) {
	b := NewBuilder()
	listType := types.ListOf("int list", types.Primitive("int"))
	cmp := b.Build(listType)

	short := values.NewSeq(values.Int(1), values.Int(2))
	long := values.NewSeq(values.Int(1), values.Int(2), values.Int(3))
	if cmp(short, long) >= 0 {
		t.Fatalf("expected shorter list to be less on a tied prefix")
	}
}

func TestDescendingReversesOrder(t *testing.T) {
	b := NewBuilder()
	descType := &types.Type{Tag: types.DataType, Key: "descending<int>", Name: "descending", Args: []*types.Type{types.Primitive("int")}}
	cmp := b.Build(descType)

	lo := values.NewConstructor1("DESC", values.Int(1))
	hi := values.NewConstructor1("DESC", values.Int(2))
	if cmp(lo, hi) <= 0 {
		t.Fatalf("expected DESC 1 > DESC 2 (reversed order)")
	}
}

func TestSumTypeOrdinalTieBreak(t *testing.T) {
	b := NewBuilder()
	dt := types.Data("shape", "shape",
		types.Ctor{Name: "Circle", Payload: types.Primitive("real"), Ordinal: 0},
		types.Ctor{Name: "Square", Payload: types.Primitive("real"), Ordinal: 1},
	)
	cmp := b.Build(dt)

	circle := values.NewConstructor1("Circle", values.Real(1))
	square := values.NewConstructor1("Square", values.Real(0))
	if cmp(circle, square) >= 0 {
		t.Fatalf("expected Circle < Square by declaration ordinal regardless of payload")
	}

	c1 := values.NewConstructor1("Circle", values.Real(1))
	c2 := values.NewConstructor1("Circle", values.Real(2))
	if cmp(c1, c2) >= 0 {
		t.Fatalf("expected same-constructor comparison to fall through to payload")
	}
}

func TestNaturalOrderNeverReportsNaNEqual(t *testing.T) {
	b := NewBuilder()
	cmp := b.Build(types.Primitive("real"))

	nan := values.PositiveNaN()
	if cmp(nan, nan) == 0 {
		t.Fatalf("expected naturalOrder(nan, nan) != 0; NaN must never compare equal")
	}
	if cmp(values.Real(1), nan) == 0 {
		t.Fatalf("expected naturalOrder(1.0, nan) != 0")
	}
}

func TestCyclicDatatypeComparator(t *testing.T) {
	// A recursive `node` datatype: Leaf | Node of node list.
	b := NewBuilder()
	node := &types.Type{Tag: types.DataType, Key: "node", Name: "node"}
	nodeList := types.ListOf("node list", node)
	node.Ctors = []types.Ctor{
		{Name: "Leaf", Ordinal: 0},
		{Name: "Node", Payload: nodeList, Ordinal: 1},
	}

	cmp := b.Build(node)

	leaf := values.NewConstructor0("Leaf")
	wrapped := values.NewConstructor1("Node", values.NewSeq(leaf))
	if cmp(leaf, wrapped) >= 0 {
		t.Fatalf("expected Leaf < Node [...] by ordinal")
	}

	a := values.NewConstructor1("Node", values.NewSeq(leaf))
	bv := values.NewConstructor1("Node", values.NewSeq(leaf, leaf))
	if cmp(a, bv) >= 0 {
		t.Fatalf("expected shorter child list to be less")
	}
}
