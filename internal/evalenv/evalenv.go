// Package evalenv implements the evaluator's environment chain: an
// immutable sequence of frames with a map-backed root, one-slot
// immutable sub-frames, and one-slot mutable sub-frames used by inner
// loops of relational pipelines so they can rebind the last slot
// instead of allocating a frame per row. The evaluator relies on the
// distinction between "always a fresh frame" and "the same frame,
// rebound" to keep `from` pipelines allocation-free per row.
package evalenv

import "github.com/hydromatic/morel-core/internal/values"

// Env is the read side of the environment chain, shared by all three
// variants.
type Env interface {
	// GetOpt looks up name, searching from the innermost frame outward;
	// the first hit wins.
	GetOpt(name string) (values.Value, bool)

	// Bind prepends a new immutable one-slot frame; it never mutates
	// the receiver.
	Bind(name string, v values.Value) Env

	// BindMutable prepends a fresh mutable one-slot frame, used for
	// per-row binding in a scan.
	BindMutable(name string) MutableEnv

	// BindMutableArray prepends a mutable frame backed by a shared
	// array of values, one name per slot (reason 2: group/set-op
	// outputs where several names share a backing array).
	BindMutableArray(names []string) MutableArrayEnv

	// BindMutableList prepends a mutable frame whose single slot holds
	// a whole sequence (reason 3: the result path of set ops).
	BindMutableList(name string) MutableEnv

	// BindMutablePat prepends a mutable frame whose slot is matched
	// against a pattern on every Set (reason 4: filtering via pattern
	// shape). Binder is supplied by the caller (package pattern) to
	// avoid an import cycle.
	BindMutablePat(binder func(arg values.Value, consume func(name string, v values.Value)) bool) MutablePatEnv

	// Visit calls consumer for every (name, value) binding, inner
	// frames first; a shadowed binding is still visited after its
	// shadower, so callers can build deterministic first-wins maps.
	Visit(consumer func(name string, v values.Value))

	// Fix collapses any outstanding mutable last slot into an
	// immutable view, so a closure that captures this chain sees a
	// stable environment. Fix is idempotent.
	Fix() Env
}

// MutableEnv is an Env whose last slot may be replaced in place.
type MutableEnv interface {
	Env
	Set(v values.Value)
}

// MutableArrayEnv binds several names against a shared backing array.
type MutableArrayEnv interface {
	Env
	SetArray(vs []values.Value)
}

// MutablePatEnv re-matches a pattern against each new row; SetOpt
// reports whether the row matched (false means the row should be
// dropped by the caller).
type MutablePatEnv interface {
	Env
	SetOpt(v values.Value) bool
}

// --- root frame ---

type rootEnv struct {
	vars map[string]values.Value
}

// NewRoot builds the map-backed root frame holding built-ins and
// session state.
func NewRoot(vars map[string]values.Value) Env {
	if vars == nil {
		vars = map[string]values.Value{}
	}
	return &rootEnv{vars: vars}
}

func (r *rootEnv) GetOpt(name string) (values.Value, bool) {
	v, ok := r.vars[name]
	return v, ok
}

func (r *rootEnv) Bind(name string, v values.Value) Env {
	return &frameEnv{parent: r, name: name, value: v}
}

func (r *rootEnv) BindMutable(name string) MutableEnv {
	return &mutableFrame{parent: r, name: name}
}

func (r *rootEnv) BindMutableArray(names []string) MutableArrayEnv {
	return &mutableArrayFrame{parent: r, names: names}
}

func (r *rootEnv) BindMutableList(name string) MutableEnv {
	return &mutableFrame{parent: r, name: name}
}

func (r *rootEnv) BindMutablePat(binder func(values.Value, func(string, values.Value)) bool) MutablePatEnv {
	return &mutablePatFrame{parent: r, binder: binder}
}

func (r *rootEnv) Visit(consumer func(string, values.Value)) {
	for name, v := range r.vars {
		consumer(name, v)
	}
}

func (r *rootEnv) Fix() Env { return r }

// --- immutable one-slot frame ---

type frameEnv struct {
	parent Env
	name   string
	value  values.Value
}

func (f *frameEnv) GetOpt(name string) (values.Value, bool) {
	if name == f.name {
		return f.value, true
	}
	return f.parent.GetOpt(name)
}

func (f *frameEnv) Bind(name string, v values.Value) Env {
	return &frameEnv{parent: f, name: name, value: v}
}

func (f *frameEnv) BindMutable(name string) MutableEnv {
	return &mutableFrame{parent: f, name: name}
}

func (f *frameEnv) BindMutableArray(names []string) MutableArrayEnv {
	return &mutableArrayFrame{parent: f, names: names}
}

func (f *frameEnv) BindMutableList(name string) MutableEnv {
	return &mutableFrame{parent: f, name: name}
}

func (f *frameEnv) BindMutablePat(binder func(values.Value, func(string, values.Value)) bool) MutablePatEnv {
	return &mutablePatFrame{parent: f, binder: binder}
}

func (f *frameEnv) Visit(consumer func(string, values.Value)) {
	consumer(f.name, f.value)
	f.parent.Visit(consumer)
}

func (f *frameEnv) Fix() Env { return f }

// --- mutable one-slot frame ---

type mutableFrame struct {
	parent Env
	name   string
	value  values.Value
	fixed  bool
}

func (m *mutableFrame) GetOpt(name string) (values.Value, bool) {
	if name == m.name {
		return m.value, true
	}
	return m.parent.GetOpt(name)
}

func (m *mutableFrame) Bind(name string, v values.Value) Env {
	return &frameEnv{parent: m, name: name, value: v}
}

func (m *mutableFrame) BindMutable(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutableFrame) BindMutableArray(names []string) MutableArrayEnv {
	return &mutableArrayFrame{parent: m, names: names}
}

func (m *mutableFrame) BindMutableList(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutableFrame) BindMutablePat(binder func(values.Value, func(string, values.Value)) bool) MutablePatEnv {
	return &mutablePatFrame{parent: m, binder: binder}
}

func (m *mutableFrame) Visit(consumer func(string, values.Value)) {
	consumer(m.name, m.value)
	m.parent.Visit(consumer)
}

func (m *mutableFrame) Fix() Env {
	m.fixed = true
	return m
}

func (m *mutableFrame) Set(v values.Value) {
	if m.fixed {
		panic("evalenv: mutation of a fixed frame's last slot is forbidden")
	}
	m.value = v
}

// --- mutable array frame (group / set-op outputs) ---

type mutableArrayFrame struct {
	parent Env
	names  []string
	vals   []values.Value
	fixed  bool
}

func (m *mutableArrayFrame) GetOpt(name string) (values.Value, bool) {
	for i, n := range m.names {
		if n == name && i < len(m.vals) {
			return m.vals[i], true
		}
	}
	return m.parent.GetOpt(name)
}

func (m *mutableArrayFrame) Bind(name string, v values.Value) Env {
	return &frameEnv{parent: m, name: name, value: v}
}

func (m *mutableArrayFrame) BindMutable(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutableArrayFrame) BindMutableArray(names []string) MutableArrayEnv {
	return &mutableArrayFrame{parent: m, names: names}
}

func (m *mutableArrayFrame) BindMutableList(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutableArrayFrame) BindMutablePat(binder func(values.Value, func(string, values.Value)) bool) MutablePatEnv {
	return &mutablePatFrame{parent: m, binder: binder}
}

func (m *mutableArrayFrame) Visit(consumer func(string, values.Value)) {
	for i, n := range m.names {
		if i < len(m.vals) {
			consumer(n, m.vals[i])
		}
	}
	m.parent.Visit(consumer)
}

func (m *mutableArrayFrame) Fix() Env {
	m.fixed = true
	return m
}

func (m *mutableArrayFrame) SetArray(vs []values.Value) {
	if m.fixed {
		panic("evalenv: mutation of a fixed frame's last slot is forbidden")
	}
	m.vals = vs
}

// --- mutable pattern-matched frame ---

type mutablePatFrame struct {
	parent Env
	binder func(values.Value, func(string, values.Value)) bool
	bound  map[string]values.Value
	fixed  bool
}

func (m *mutablePatFrame) GetOpt(name string) (values.Value, bool) {
	if m.bound != nil {
		if v, ok := m.bound[name]; ok {
			return v, true
		}
	}
	return m.parent.GetOpt(name)
}

func (m *mutablePatFrame) Bind(name string, v values.Value) Env {
	return &frameEnv{parent: m, name: name, value: v}
}

func (m *mutablePatFrame) BindMutable(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutablePatFrame) BindMutableArray(names []string) MutableArrayEnv {
	return &mutableArrayFrame{parent: m, names: names}
}

func (m *mutablePatFrame) BindMutableList(name string) MutableEnv {
	return &mutableFrame{parent: m, name: name}
}

func (m *mutablePatFrame) BindMutablePat(binder func(values.Value, func(string, values.Value)) bool) MutablePatEnv {
	return &mutablePatFrame{parent: m, binder: binder}
}

func (m *mutablePatFrame) Visit(consumer func(string, values.Value)) {
	for name, v := range m.bound {
		consumer(name, v)
	}
	m.parent.Visit(consumer)
}

func (m *mutablePatFrame) Fix() Env {
	m.fixed = true
	return m
}

// SetOpt re-matches the pattern against v; it returns false (and
// leaves the previous bindings untouched) when the row's shape does
// not match, so the scan sink can drop the row.
func (m *mutablePatFrame) SetOpt(v values.Value) bool {
	if m.fixed {
		panic("evalenv: mutation of a fixed frame's last slot is forbidden")
	}
	next := map[string]values.Value{}
	ok := m.binder(v, func(name string, val values.Value) { next[name] = val })
	if !ok {
		return false
	}
	m.bound = next
	return true
}
