package rowsink

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// WhereSink forwards only rows for which Cond evaluates to true.
type WhereSink struct {
	Cond       code.Code
	Downstream RowSink
}

func (w *WhereSink) Start(env evalenv.Env) { w.Downstream.Start(env) }
func (w *WhereSink) Accept(env evalenv.Env) {
	if bool(w.Cond.Eval(env).(values.Bool)) {
		w.Downstream.Accept(env)
	}
}
func (w *WhereSink) Result(env evalenv.Env) []values.Value { return w.Downstream.Result(env) }

// SkipSink forwards rows after the first N, where N is evaluated once
// at start.
type SkipSink struct {
	CountCode  code.Code
	Downstream RowSink

	count int64
	seen  int64
}

func (s *SkipSink) Start(env evalenv.Env) {
	s.count = int64(s.CountCode.Eval(env).(values.Int))
	s.seen = 0
	s.Downstream.Start(env)
}
func (s *SkipSink) Accept(env evalenv.Env) {
	s.seen++
	if s.seen > s.count {
		s.Downstream.Accept(env)
	}
}
func (s *SkipSink) Result(env evalenv.Env) []values.Value { return s.Downstream.Result(env) }

// TakeSink forwards at most N rows, then ignores further input
// without requiring the driver to stop producing rows.
type TakeSink struct {
	CountCode  code.Code
	Downstream RowSink

	limit     int64
	forwarded int64
}

func (t *TakeSink) Start(env evalenv.Env) {
	t.limit = int64(t.CountCode.Eval(env).(values.Int))
	t.forwarded = 0
	t.Downstream.Start(env)
}
func (t *TakeSink) Accept(env evalenv.Env) {
	if t.forwarded >= t.limit {
		return
	}
	t.forwarded++
	t.Downstream.Accept(env)
}
func (t *TakeSink) Result(env evalenv.Env) []values.Value { return t.Downstream.Result(env) }
