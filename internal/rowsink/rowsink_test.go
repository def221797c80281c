package rowsink

import (
	"testing"

	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/comparator"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/types"
	"github.com/hydromatic/morel-core/internal/values"
)

func row(a, b int64) values.Value { return values.NewSeq(values.Int(a), values.Int(b)) }

func TestScanWhereCollect(t *testing.T) {
	src := values.NewSeq(row(1, 2), row(3, 4), row(5, 6))

	collect := &CollectSink{ValueCode: code.Get("a")}
	where := &WhereSink{Cond: code.Apply1(
		code.Const(greaterThan2{}),
		code.Get("a"),
	), Downstream: collect}
	scan := &ScanSink{
		Pat:        pattern.Tuple(pattern.Ident("a"), pattern.Ident("b")),
		Source:     code.Const(src),
		Downstream: where,
	}

	env := evalenv.NewRoot(nil)
	scan.Start(env)
	scan.Accept(env)
	got := scan.Result(env)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(got), got)
	}
	if got[0].(values.Int) != 3 || got[1].(values.Int) != 5 {
		t.Fatalf("unexpected rows: %v", got)
	}
}

// greaterThan2 is a tiny Applicable1 test double.
type greaterThan2 struct{}

func (greaterThan2) Kind() values.Kind { return values.KApplicable }
func (greaterThan2) Apply(_ evalenv.Env, arg values.Value) values.Value {
	return greaterThan2{}.Apply1(arg)
}
func (greaterThan2) Apply1(arg values.Value) values.Value {
	return values.Bool(int64(arg.(values.Int)) > 2)
}
func (greaterThan2) Describe(d *describe.Describer) *describe.Describer {
	d.Start("greaterThan2")
	return d.End()
}

func TestGroupSumAggregate(t *testing.T) {
	rows := values.NewSeq(
		values.NewSeq(values.Int(1), values.Int(2)),
		values.NewSeq(values.Int(1), values.Int(3)),
		values.NewSeq(values.Int(2), values.Int(5)),
	)

	collect := &CollectSink{ValueCode: code.Get("a")}
	group := &GroupSink{
		KeyNames: []string{"a"},
		KeyCode:  code.Get("a"),
		RowNames: []string{"a", "b"},
		RowCode:  code.Tuple(code.Get("a"), code.Get("b")),
		Aggregates: []Aggregate{
			{Name: "s", InputNames: []string{"b"}, Fn: sumInts{}},
		},
		Downstream: collect,
	}
	scan := &ScanSink{
		Pat:        pattern.Tuple(pattern.Ident("a"), pattern.Ident("b")),
		Source:     code.Const(rows),
		Downstream: group,
	}

	env := evalenv.NewRoot(nil)
	scan.Start(env)
	scan.Accept(env)
	got := scan.Result(env)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
}

// TestGroupWithNoKeysDoesNotMisalignAggregates covers the zero-key
// shape of `group` (e.g. `group compute s = sum of b`): the output row
// must start directly at the aggregate slots, with no spurious leading
// key column.
func TestGroupWithNoKeysDoesNotMisalignAggregates(t *testing.T) {
	rows := values.NewSeq(values.Int(2), values.Int(3), values.Int(5))

	collect := &CollectSink{ValueCode: code.Get("s")}
	group := &GroupSink{
		KeyCode:  code.Const(values.NewSeq()),
		RowNames: []string{"b"},
		RowCode:  code.Tuple(code.Get("b")),
		Aggregates: []Aggregate{
			{Name: "s", InputNames: []string{"b"}, Fn: sumInts{}},
		},
		Downstream: collect,
	}
	scan := &ScanSink{
		Pat:        pattern.Ident("b"),
		Source:     code.Const(rows),
		Downstream: group,
	}

	env := evalenv.NewRoot(nil)
	scan.Start(env)
	scan.Accept(env)
	got := scan.Result(env)
	if len(got) != 1 {
		t.Fatalf("expected exactly one zero-key group, got %d: %v", len(got), got)
	}
	if int64(got[0].(values.Int)) != 10 {
		t.Fatalf("expected the aggregate sum 10 in the sole output slot, got %v", got[0])
	}
}

type sumInts struct{}

func (sumInts) Kind() values.Kind { return values.KApplicable }
func (s sumInts) Apply(_ evalenv.Env, arg values.Value) values.Value { return s.Apply1(arg) }
func (sumInts) Apply1(arg values.Value) values.Value {
	var total int64
	for _, v := range arg.(values.Seq) {
		total += int64(v.(values.Int))
	}
	return values.Int(total)
}
func (sumInts) Describe(d *describe.Describer) *describe.Describer {
	d.Start("sumInts")
	return d.End()
}

func TestOrderSortsByComparator(t *testing.T) {
	rows := values.NewSeq(row(3, 0), row(1, 0), row(2, 0))
	b := comparator.NewBuilder()
	cmp := b.Build(types.Primitive("int"))

	collect := &CollectSink{ValueCode: code.Get("a")}
	order := &OrderSink{
		RowNames:   []string{"a", "b"},
		RowCode:    code.Tuple(code.Get("a"), code.Get("b")),
		KeyCode:    code.Get("a"),
		Cmp:        cmp,
		Downstream: collect,
	}
	scan := &ScanSink{
		Pat:        pattern.Tuple(pattern.Ident("a"), pattern.Ident("b")),
		Source:     code.Const(rows),
		Downstream: order,
	}

	env := evalenv.NewRoot(nil)
	scan.Start(env)
	scan.Accept(env)
	got := scan.Result(env)
	want := []int64{1, 2, 3}
	for i, w := range want {
		if int64(got[i].(values.Int)) != w {
			t.Fatalf("position %d: got %v want %d", i, got[i], w)
		}
	}
}

func TestUnionDistinct(t *testing.T) {
	a := []values.Value{values.Int(1), values.Int(2), values.Int(3)}
	b := []values.Value{values.Int(2), values.Int(3), values.Int(4)}
	got := UnionDistinct(a, b)
	if len(got) != 4 {
		t.Fatalf("expected 4 distinct elements, got %d: %v", len(got), got)
	}
}

func TestIntersectAllMultisetEquality(t *testing.T) {
	a := []values.Value{values.Int(1), values.Int(1), values.Int(2), values.Int(3)}
	b := []values.Value{values.Int(1), values.Int(1), values.Int(1), values.Int(3)}
	got := IntersectAll(a, b)
	counts := map[int64]int{}
	for _, v := range got {
		counts[int64(v.(values.Int))]++
	}
	if counts[1] != 2 || counts[3] != 1 || counts[2] != 0 {
		t.Fatalf("unexpected multiset: %v", got)
	}
}

func TestSkipAndTakeCounts(t *testing.T) {
	src := values.NewSeq(
		values.Int(1), values.Int(2), values.Int(3), values.Int(4), values.Int(5),
	)

	build := func(mk func(down RowSink) RowSink) []values.Value {
		collect := &CollectSink{ValueCode: code.Get("x")}
		scan := &ScanSink{
			Pat:        pattern.Ident("x"),
			Source:     code.Const(src),
			Downstream: mk(collect),
		}
		env := evalenv.NewRoot(nil)
		scan.Start(env)
		scan.Accept(env)
		return scan.Result(env)
	}

	skipped := build(func(down RowSink) RowSink {
		return &SkipSink{CountCode: code.Const(values.Int(2)), Downstream: down}
	})
	if len(skipped) != 3 || skipped[0] != values.Int(3) {
		t.Fatalf("expected skip 2 to drop the first two rows, got %v", skipped)
	}

	taken := build(func(down RowSink) RowSink {
		return &TakeSink{CountCode: code.Const(values.Int(2)), Downstream: down}
	})
	if len(taken) != 2 || taken[1] != values.Int(2) {
		t.Fatalf("expected take 2 to keep the first two rows, got %v", taken)
	}

	overTaken := build(func(down RowSink) RowSink {
		return &TakeSink{CountCode: code.Const(values.Int(99)), Downstream: down}
	})
	if len(overTaken) != 5 {
		t.Fatalf("expected take beyond the input size to keep everything, got %v", overTaken)
	}
}

func TestExceptAllClampsAtZero(t *testing.T) {
	a := []values.Value{values.Int(1), values.Int(1), values.Int(2)}
	b := []values.Value{values.Int(1), values.Int(1), values.Int(1), values.Int(3)}
	got := ExceptAll(a, b)
	if len(got) != 1 || got[0] != values.Int(2) {
		t.Fatalf("expected the over-subtracted key clamped out, got %v", got)
	}
}

func TestExceptDistinctRemovesWholeKey(t *testing.T) {
	a := []values.Value{values.Int(1), values.Int(1), values.Int(2), values.Int(3)}
	b := []values.Value{values.Int(1)}
	got := ExceptDistinct(a, b)
	if len(got) != 2 || got[0] != values.Int(2) || got[1] != values.Int(3) {
		t.Fatalf("expected 1 removed entirely and the rest collapsed, got %v", got)
	}
}

func TestIntersectDistinctKeepsOnlyCommonKeys(t *testing.T) {
	a := []values.Value{values.Int(1), values.Int(2), values.Int(2), values.Int(3)}
	b := []values.Value{values.Int(2), values.Int(3), values.Int(4)}
	got := IntersectDistinct(a, b)
	if len(got) != 2 || got[0] != values.Int(2) || got[1] != values.Int(3) {
		t.Fatalf("expected the distinct common keys in first-seen order, got %v", got)
	}
}

func TestFromCodeResetsOrdinalPerEvaluation(t *testing.T) {
	src := values.NewSeq(values.Int(10), values.Int(20), values.Int(30))

	cell := &OrdinalCell{}
	prog := From(func() (RowSink, []*OrdinalCell) {
		collect := &CollectSink{ValueCode: OrdinalGet(cell)}
		scan := &ScanSink{
			Pat:        pattern.Ident("x"),
			Source:     code.Const(src),
			Ordinal:    cell,
			Downstream: collect,
		}
		return scan, []*OrdinalCell{cell}
	})

	env := evalenv.NewRoot(nil)
	for round := 0; round < 2; round++ {
		got := prog.Eval(env).(values.Seq)
		want := []int64{0, 1, 2}
		for i, w := range want {
			if int64(got[i].(values.Int)) != w {
				t.Fatalf("round %d position %d: got %v want %d", round, i, got[i], w)
			}
		}
	}
}
