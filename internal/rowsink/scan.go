package rowsink

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/pattern"
	"github.com/hydromatic/morel-core/internal/values"
)

// ScanSink is `from pat in expr where cond`: it evaluates expr once
// per drive (an inner scan is driven once per outer row) and offers
// each element to pat via a pattern-backed mutable frame, skipping
// elements that fail to match or fail the join condition. The join is
// always inner.
type ScanSink struct {
	Pat        pattern.Pat
	Source     code.Code
	Cond       code.Code // nil means always true
	Ordinal    *OrdinalCell
	Downstream RowSink

	frame evalenv.MutablePatEnv
}

func (s *ScanSink) Start(env evalenv.Env) {
	s.frame = env.BindMutablePat(func(arg values.Value, consume func(string, values.Value)) bool {
		return pattern.BindRecurse(s.Pat, arg, consume)
	})
	s.Downstream.Start(s.frame)
}

func (s *ScanSink) Accept(env evalenv.Env) {
	seq := s.Source.Eval(env).(values.Seq)
	for _, v := range seq {
		if !s.frame.SetOpt(v) {
			continue
		}
		if s.Cond != nil && !bool(s.Cond.Eval(s.frame).(values.Bool)) {
			continue
		}
		if s.Ordinal != nil {
			s.Ordinal.Inc()
		}
		s.Downstream.Accept(s.frame)
	}
}

func (s *ScanSink) Result(env evalenv.Env) []values.Value {
	return s.Downstream.Result(s.frame)
}

func (s *ScanSink) Describe(d *describe.Describer) *describe.Describer {
	d.Start("scan")
	d.ArgDescribable("source", s.Source)
	if s.Cond != nil {
		d.ArgDescribable("cond", s.Cond)
	}
	return d.End()
}
