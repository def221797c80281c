// Package describe implements the plan-rendering visitor that walks a
// Code/Applicable/RowSink tree, used by `Sys.plan` and test
// snapshots. Nodes report themselves through the Start/Arg/End
// protocol, so a Code node never needs to know how its own rendering
// is laid out.
package describe

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Describable is implemented by anything that can append its own
// argument list to a Describer node (a nested Code, Applicable, or
// RowSink).
type Describable interface {
	Describe(d *Describer) *Describer
}

// node is one entry in the rendered tree.
type node struct {
	name     string
	args     []arg
	children []*node
}

type arg struct {
	name  string
	value string
	child *node
}

// Describer accumulates a plan tree. Zero value is usable.
type Describer struct {
	root  *node
	stack []*node
}

// Start begins a new node named name and pushes it as the current
// context; Arg calls made before the matching End are attached to it.
// Returns the Describer for chaining.
func (d *Describer) Start(name string) *Describer {
	n := &node{name: name}
	if len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		top.children = append(top.children, n)
	} else {
		d.root = n
	}
	d.stack = append(d.stack, n)
	return d
}

// End closes the node opened by the matching Start.
func (d *Describer) End() *Describer {
	if len(d.stack) > 0 {
		d.stack = d.stack[:len(d.stack)-1]
	}
	return d
}

// Arg attaches a scalar argument to the current node.
func (d *Describer) Arg(name string, value interface{}) *Describer {
	top := d.current()
	top.args = append(top.args, arg{name: name, value: fmt.Sprint(value)})
	return d
}

// ArgDescribable attaches a nested describable's own tree as an
// argument of the current node.
func (d *Describer) ArgDescribable(name string, child Describable) *Describer {
	sub := &Describer{}
	sub.Start(name)
	child.Describe(sub)
	sub.End()
	top := d.current()
	if sub.root != nil {
		top.args = append(top.args, arg{name: name, child: sub.root})
	}
	return d
}

func (d *Describer) current() *node {
	if len(d.stack) == 0 {
		d.Start("?")
	}
	return d.stack[len(d.stack)-1]
}

// String renders the plan as an indented plain-text tree, the form
// used when stdout is not a terminal (see cmd/morel).
func (d *Describer) String() string {
	var sb strings.Builder
	if d.root != nil {
		writeNode(&sb, d.root, 0)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s", indent, n.name)
	var flat []string
	for _, a := range n.args {
		if a.child == nil {
			flat = append(flat, fmt.Sprintf("%s=%s", a.name, a.value))
		}
	}
	sort.Strings(flat)
	if len(flat) > 0 {
		fmt.Fprintf(sb, "(%s)", strings.Join(flat, ", "))
	}
	sb.WriteByte('\n')
	for _, a := range n.args {
		if a.child != nil {
			writeNode(sb, a.child, depth+1)
		}
	}
	for _, c := range n.children {
		writeNode(sb, c, depth+1)
	}
}

// Visit traverses root's description tree without rendering it,
// invoking fn with every node name encountered, depth-first. Sinks use
// it to discover start-time actions (ordinal resets) declared anywhere
// in a compiled tree before the pipeline's first start.
func Visit(root Describable, fn func(name string)) {
	d := &Describer{}
	d.Start("")
	root.Describe(d)
	d.End()
	visitNode(d.root, fn)
}

func visitNode(n *node, fn func(string)) {
	if n == nil {
		return
	}
	if n.name != "" {
		fn(n.name)
	}
	for _, a := range n.args {
		if a.child != nil {
			visitNode(a.child, fn)
		}
	}
	for _, c := range n.children {
		visitNode(c, fn)
	}
}

// yamlNode is the shape snapshot tests marshal to YAML via yaml.v3,
// giving `Sys.plan` golden files a stable, diffable representation.
type yamlNode struct {
	Op   string            `yaml:"op"`
	Args map[string]string `yaml:"args,omitempty"`
	Kids []yamlNode        `yaml:"children,omitempty"`
}

func toYAMLNode(n *node) yamlNode {
	if n == nil {
		return yamlNode{}
	}
	y := yamlNode{Op: n.name}
	for _, a := range n.args {
		if a.child != nil {
			y.Kids = append(y.Kids, toYAMLNode(a.child))
			continue
		}
		if y.Args == nil {
			y.Args = map[string]string{}
		}
		y.Args[a.name] = a.value
	}
	for _, c := range n.children {
		y.Kids = append(y.Kids, toYAMLNode(c))
	}
	return y
}

// YAML renders the plan as a YAML document suitable for snapshot
// comparison in tests.
func (d *Describer) YAML() (string, error) {
	if d.root == nil {
		return "", nil
	}
	out, err := yaml.Marshal(toYAMLNode(d.root))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
