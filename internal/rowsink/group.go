package rowsink

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// Aggregate is one `compute` clause: Fn is applied to the sequence of
// InputNames-projections of every row in a group's bucket.
type Aggregate struct {
	Name       string
	InputNames []string
	Fn         code.Applicable1
}

// GroupSink implements `group ... compute ...`. KeyCode and RowCode
// are evaluated against the upstream row's env; RowNames lists, in
// order, the names RowCode's value carries, so aggregates can project
// the subset they need. With exactly one name RowCode yields that
// name's value itself, otherwise a Seq in RowNames order (see
// project). The output-name list always begins with the key
// names, followed by one slot per aggregate.
type GroupSink struct {
	KeyNames   []string
	KeyCode    code.Code
	RowNames   []string
	RowCode    code.Code
	Aggregates []Aggregate
	Downstream RowSink

	outFrame evalenv.MutableArrayEnv
	buckets  map[string]*groupBucket
	order    []string
}

type groupBucket struct {
	key  values.Value
	rows []values.Value
}

func (g *GroupSink) Start(env evalenv.Env) {
	names := make([]string, 0, len(g.KeyNames)+len(g.Aggregates))
	names = append(names, g.KeyNames...)
	for _, a := range g.Aggregates {
		names = append(names, a.Name)
	}
	g.outFrame = env.BindMutableArray(names)
	g.Downstream.Start(g.outFrame)
	g.buckets = map[string]*groupBucket{}
	g.order = nil
}

func (g *GroupSink) Accept(env evalenv.Env) {
	key := g.KeyCode.Eval(env)
	row := g.RowCode.Eval(env)
	k := rowKey(key)
	b, ok := g.buckets[k]
	if !ok {
		b = &groupBucket{key: key}
		g.buckets[k] = b
		g.order = append(g.order, k)
	}
	b.rows = append(b.rows, row)
}

func (g *GroupSink) Result(env evalenv.Env) []values.Value {
	if len(g.order) == 0 && len(g.KeyNames) == 0 {
		// An empty source still yields one empty-key group, so a
		// zero-key aggregate over an empty collection produces the
		// aggregates' values for an empty bucket rather than no row.
		g.buckets[""] = &groupBucket{key: values.NewSeq()}
		g.order = append(g.order, "")
	}
	for _, k := range g.order {
		b := g.buckets[k]
		vals := make([]values.Value, 0, len(g.KeyNames)+len(g.Aggregates))
		switch len(g.KeyNames) {
		case 0:
			// No key columns: the output row starts directly at the
			// aggregate slots.
		case 1:
			vals = append(vals, b.key)
		default:
			vals = append(vals, b.key.(values.Seq)...)
		}
		for _, a := range g.Aggregates {
			bucketSeq := make(values.Seq, len(b.rows))
			for i, r := range b.rows {
				bucketSeq[i] = project(r, g.RowNames, a.InputNames)
			}
			vals = append(vals, a.Fn.Apply1(bucketSeq))
		}
		g.outFrame.SetArray(vals)
		g.Downstream.Accept(g.outFrame)
	}
	return g.Downstream.Result(g.outFrame)
}
