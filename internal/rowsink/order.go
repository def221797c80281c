package rowsink

import (
	"sort"

	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/comparator"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// OrderSink implements `order`: it buffers every row, then sorts
// using a pair of mutable array envs to evaluate the sort key against
// two candidate rows at a time, delegating the actual comparison to a
// pre-built Comparator.
type OrderSink struct {
	RowNames   []string
	RowCode    code.Code
	KeyCode    code.Code
	Cmp        comparator.Comparator
	Downstream RowSink

	outFrame   evalenv.MutableArrayEnv
	sortFrameA evalenv.MutableArrayEnv
	sortFrameB evalenv.MutableArrayEnv
	rows       []values.Value
}

func (o *OrderSink) Start(env evalenv.Env) {
	o.outFrame = env.BindMutableArray(o.RowNames)
	o.sortFrameA = env.BindMutableArray(o.RowNames)
	o.sortFrameB = env.BindMutableArray(o.RowNames)
	o.Downstream.Start(o.outFrame)
	o.rows = nil
}

func (o *OrderSink) Accept(env evalenv.Env) {
	o.rows = append(o.rows, o.RowCode.Eval(env))
}

func (o *OrderSink) Result(env evalenv.Env) []values.Value {
	sort.SliceStable(o.rows, func(i, j int) bool {
		o.sortFrameA.SetArray(toFields(o.rows[i]))
		o.sortFrameB.SetArray(toFields(o.rows[j]))
		ka := o.KeyCode.Eval(o.sortFrameA)
		kb := o.KeyCode.Eval(o.sortFrameB)
		return o.Cmp(ka, kb) < 0
	})
	for _, r := range o.rows {
		o.outFrame.SetArray(toFields(r))
		o.Downstream.Accept(o.outFrame)
	}
	return o.Downstream.Result(o.outFrame)
}

func toFields(row values.Value) []values.Value {
	if seq, ok := row.(values.Seq); ok {
		return []values.Value(seq)
	}
	return []values.Value{row}
}
