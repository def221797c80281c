// Package rowsink implements the relational pipeline that backs
// `from` expressions: a chain of sinks, each forwarding, buffering, or
// dropping rows pushed through it by its upstream neighbor, ending in
// a terminal sink that materializes a result sequence. Each sink
// follows a three-phase protocol — Start once before any row, Accept
// once per row, Result once after input ends.
package rowsink

import (
	"fmt"

	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// RowSink is one step of a relational pipeline.
type RowSink interface {
	// Start runs once before any row arrives; it must recursively start
	// any downstream sink.
	Start(env evalenv.Env)
	// Accept handles one input row, bound into env by the caller.
	Accept(env evalenv.Env)
	// Result drains buffered state (recursively draining downstream)
	// and returns the final output sequence.
	Result(env evalenv.Env) []values.Value
}

// OrdinalCell is the shared mutable counter backing an `ordinal`
// reference inside a pipeline: reset to -1 at start, incremented on
// every accept of the sink that owns it.
type OrdinalCell struct{ value int64 }

func (c *OrdinalCell) Reset() { c.value = -1 }
func (c *OrdinalCell) Inc() int64 { c.value++; return c.value }
func (c *OrdinalCell) Get() int64 { return c.value }

// OrdinalGetCode reads the current value of an OrdinalCell.
type OrdinalGetCode struct{ Cell *OrdinalCell }

func OrdinalGet(cell *OrdinalCell) code.Code { return OrdinalGetCode{Cell: cell} }

func (o OrdinalGetCode) Eval(evalenv.Env) values.Value { return values.Int(o.Cell.Get()) }
func (OrdinalGetCode) IsConstant() bool { return false }
func (o OrdinalGetCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("ordinal")
	return d.End()
}

// OrdinalIncCode increments the cell and evaluates to the new value.
// ScanSink increments its own Ordinal cell directly (OrdinalCell.Inc)
// once per accepted row, so after the start-time reset to -1 the first
// accepted row observes ordinal 0.
type OrdinalIncCode struct{ Cell *OrdinalCell }

func OrdinalInc(cell *OrdinalCell) code.Code { return OrdinalIncCode{Cell: cell} }

func (o OrdinalIncCode) Eval(evalenv.Env) values.Value { return values.Int(o.Cell.Inc()) }
func (OrdinalIncCode) IsConstant() bool { return false }
func (o OrdinalIncCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("ordinalInc")
	return d.End()
}

// FirstRowSink resets every ordinal cell in the chain before the
// first accept; FromCode wraps the root sink in one whenever the chain
// declared at least one ordinal.
type FirstRowSink struct {
	Inner    RowSink
	Ordinals []*OrdinalCell
}

func (f *FirstRowSink) Start(env evalenv.Env) {
	for _, c := range f.Ordinals {
		c.Reset()
	}
	f.Inner.Start(env)
}
func (f *FirstRowSink) Accept(env evalenv.Env) { f.Inner.Accept(env) }
func (f *FirstRowSink) Result(env evalenv.Env) []values.Value { return f.Inner.Result(env) }

// FromCode is the compiled `from` expression: a sink factory invoked
// once per evaluation, since sink state (buffers, counters) must not
// leak across repeated evaluations of the same compiled node (e.g.
// inside a function body called more than once).
type FromCode struct {
	// NewChain builds a fresh root sink and the ordinal cells it (or its
	// downstream) declared, so FromCode.Eval can wrap it in a
	// FirstRowSink when needed.
	NewChain func() (root RowSink, ordinals []*OrdinalCell)
}

func From(newChain func() (RowSink, []*OrdinalCell)) code.Code {
	return FromCode{NewChain: newChain}
}

func (f FromCode) Eval(env evalenv.Env) values.Value {
	root, ordinals := f.NewChain()
	var chain RowSink = root
	if len(ordinals) > 0 {
		chain = &FirstRowSink{Inner: root, Ordinals: ordinals}
	}
	chain.Start(env)
	chain.Accept(env)
	rows := chain.Result(env)
	return values.NewSeq(rows...)
}

func (FromCode) IsConstant() bool { return false }

func (f FromCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start("from")
	return d.End()
}

// rowKey renders a structural key for a runtime value, used by the
// group and set-op sinks to bucket rows in a plain Go map without
// depending on the comparator package (hashing needs only equality,
// not an order).
func rowKey(v values.Value) string {
	switch t := v.(type) {
	case values.Bool:
		return fmt.Sprintf("b:%v", bool(t))
	case values.Int:
		return fmt.Sprintf("i:%d", int64(t))
	case values.Real:
		return fmt.Sprintf("r:%v", float32(t))
	case values.Char:
		return fmt.Sprintf("c:%d", byte(t))
	case values.String:
		return fmt.Sprintf("s:%s", string(t))
	case values.Seq:
		out := "q:("
		for i, e := range t {
			if i > 0 {
				out += ","
			}
			out += rowKey(e)
		}
		return out + ")"
	default:
		return fmt.Sprintf("p:%p", v)
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	panic(fmt.Sprintf("rowsink: name %q not present in scope list", name))
}

// project extracts the fields named by want, in order, from a row
// snapshot captured against the full all-names list. A row is stored
// as a single value when exactly one name is in scope, otherwise as a
// Seq over the named values.
func project(row values.Value, allNames, want []string) values.Value {
	if len(allNames) == 1 {
		return row
	}
	seq := row.(values.Seq)
	if len(want) == 1 {
		return seq[indexOf(allNames, want[0])]
	}
	out := make(values.Seq, len(want))
	for i, n := range want {
		out[i] = seq[indexOf(allNames, n)]
	}
	return out
}
