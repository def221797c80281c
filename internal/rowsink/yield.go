package rowsink

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// YieldSink is a non-terminal `yield`: it evaluates each named
// expression against the current env and writes the results into a
// downstream mutable array env before forwarding.
type YieldSink struct {
	Names      []string
	Codes      []code.Code
	Downstream RowSink

	outFrame evalenv.MutableArrayEnv
}

func (y *YieldSink) Start(env evalenv.Env) {
	y.outFrame = env.BindMutableArray(y.Names)
	y.Downstream.Start(y.outFrame)
}

func (y *YieldSink) Accept(env evalenv.Env) {
	vals := make([]values.Value, len(y.Codes))
	for i, c := range y.Codes {
		vals[i] = c.Eval(env)
	}
	y.outFrame.SetArray(vals)
	y.Downstream.Accept(y.outFrame)
}

func (y *YieldSink) Result(env evalenv.Env) []values.Value { return y.Downstream.Result(y.outFrame) }

// CollectSink is the terminal yield: its ValueCode may produce a
// non-record value, which is why it evaluates a single Code rather
// than binding named fields into a further downstream env.
type CollectSink struct {
	ValueCode code.Code

	buf []values.Value
}

func (c *CollectSink) Start(evalenv.Env) { c.buf = nil }
func (c *CollectSink) Accept(env evalenv.Env) {
	c.buf = append(c.buf, c.ValueCode.Eval(env))
}
func (c *CollectSink) Result(evalenv.Env) []values.Value { return c.buf }
