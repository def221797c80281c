package rowsink

import (
	"github.com/hydromatic/morel-core/internal/code"
	"github.com/hydromatic/morel-core/internal/describe"
	"github.com/hydromatic/morel-core/internal/evalenv"
	"github.com/hydromatic/morel-core/internal/values"
)

// Union/Except/Intersect operate over already-materialized sequences
// rather than a streamed row-at-a-time chain: their bucket/count
// algorithms work in terms of input 0 versus inputs 1..N, which are
// whole sequences, not individually pushed rows. They are plain
// functions over []values.Value wrapped in a SetOpCode so they still
// compose as Code nodes in a `from` pipeline's tree; a hash-map-driven
// whole-sequence algorithm has nothing to gain from the
// start/accept/result split.

type setCounter struct {
	a, b int
}

// UnionDistinct inserts into the set in first-seen order.
func UnionDistinct(inputs ...[]values.Value) []values.Value {
	seen := map[string]bool{}
	var out []values.Value
	for _, seq := range inputs {
		for _, v := range seq {
			k := rowKey(v)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

// UnionAll forwards every row from every input.
func UnionAll(inputs ...[]values.Value) []values.Value {
	var out []values.Value
	for _, seq := range inputs {
		out = append(out, seq...)
	}
	return out
}

// ExceptDistinct removes every row found in any later input from the
// first input's distinct set.
func ExceptDistinct(inputs ...[]values.Value) []values.Value {
	present := map[string]values.Value{}
	var order []string
	for _, v := range first(inputs) {
		k := rowKey(v)
		if _, ok := present[k]; !ok {
			order = append(order, k)
		}
		present[k] = v
	}
	for _, seq := range rest(inputs) {
		for _, v := range seq {
			delete(present, rowKey(v))
		}
	}
	var out []values.Value
	for _, k := range order {
		if v, ok := present[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

// ExceptAll keeps each row's count minus later occurrences, clamped
// at zero.
func ExceptAll(inputs ...[]values.Value) []values.Value {
	counts := map[string]*setCounter{}
	vals := map[string]values.Value{}
	var order []string
	for _, v := range first(inputs) {
		k := rowKey(v)
		c, ok := counts[k]
		if !ok {
			c = &setCounter{}
			counts[k] = c
			vals[k] = v
			order = append(order, k)
		}
		c.a++
	}
	for _, seq := range rest(inputs) {
		for _, v := range seq {
			if c, ok := counts[rowKey(v)]; ok {
				c.a--
			}
		}
	}
	var out []values.Value
	for _, k := range order {
		n := counts[k].a
		for i := 0; i < n; i++ {
			out = append(out, vals[k])
		}
	}
	return out
}

// IntersectDistinct keeps a key only if it was present in every input.
func IntersectDistinct(inputs ...[]values.Value) []values.Value {
	present := map[string]values.Value{}
	var order []string
	for _, v := range first(inputs) {
		k := rowKey(v)
		if _, ok := present[k]; !ok {
			present[k] = v
			order = append(order, k)
		}
	}
	alive := map[string]bool{}
	for _, k := range order {
		alive[k] = true
	}
	for _, seq := range rest(inputs) {
		hit := map[string]bool{}
		for _, v := range seq {
			hit[rowKey(v)] = true
		}
		for k := range alive {
			if !hit[k] {
				delete(alive, k)
			}
		}
	}
	var out []values.Value
	for _, k := range order {
		if alive[k] {
			out = append(out, present[k])
		}
	}
	return out
}

// IntersectAll keeps each key min(mult_A, mult_B) times across inputs.
func IntersectAll(inputs ...[]values.Value) []values.Value {
	counts := map[string]*setCounter{}
	vals := map[string]values.Value{}
	var order []string
	for _, v := range first(inputs) {
		k := rowKey(v)
		c, ok := counts[k]
		if !ok {
			c = &setCounter{}
			counts[k] = c
			vals[k] = v
			order = append(order, k)
		}
		c.a++
	}
	for _, seq := range rest(inputs) {
		for _, v := range seq {
			if c, ok := counts[rowKey(v)]; ok {
				c.b++
			}
		}
		for _, k := range order {
			c := counts[k]
			if c.a > c.b {
				c.a = c.b
			}
			c.b = 0
		}
	}
	var out []values.Value
	for _, k := range order {
		n := counts[k].a
		for i := 0; i < n; i++ {
			out = append(out, vals[k])
		}
	}
	return out
}

func first(inputs [][]values.Value) []values.Value {
	if len(inputs) == 0 {
		return nil
	}
	return inputs[0]
}

func rest(inputs [][]values.Value) [][]values.Value {
	if len(inputs) <= 1 {
		return nil
	}
	return inputs[1:]
}

// SetOpCode lifts one of the functions above into a Code node: each
// Input evaluates to a sequence, the op combines them, and the result
// is wrapped back into a Seq.
type SetOpCode struct {
	Name   string
	Op     func(inputs ...[]values.Value) []values.Value
	Inputs []code.Code
}

func (s SetOpCode) Eval(env evalenv.Env) values.Value {
	seqs := make([][]values.Value, len(s.Inputs))
	for i, in := range s.Inputs {
		seqs[i] = []values.Value(in.Eval(env).(values.Seq))
	}
	return values.NewSeq(s.Op(seqs...)...)
}

func (SetOpCode) IsConstant() bool { return false }

func (s SetOpCode) Describe(d *describe.Describer) *describe.Describer {
	d.Start(s.Name)
	for i, in := range s.Inputs {
		d.ArgDescribable(fieldIndexName(i), in)
	}
	return d.End()
}

func fieldIndexName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return string(letters[i])
	}
	return "input"
}
