package css

import (
	"slices"
	"strings"
)

// Node is a single item of the stylesheet tree.
type Node interface {
	// Parent returns node owning this one or nil for detached nodes and
	// for the stylesheet itself.
	Parent() Parent
	// Clone returns deep detached copy of the node.
	Clone() Node

	setParent(p Parent)
}

// Parent is a node which owns ordered list of children.
type Parent interface {
	Node
	Nodes() []Node
	Append(nodes ...Node)
	InsertBefore(ref Node, nodes ...Node) bool
	Remove(n Node) bool
}

// Declaration represents single "property: value" pair.
type Declaration struct {
	Property  string // Property name as written in source
	Value     string // Value with whitespace collapsed, without !important
	Important bool   // true if value was followed by !important

	parent Parent
}

// NewDeclaration creates detached declaration.
func NewDeclaration(prop, value string) *Declaration {
	return &Declaration{Property: prop, Value: value}
}

func (d *Declaration) Parent() Parent     { return d.parent }
func (d *Declaration) setParent(p Parent) { d.parent = p }

func (d *Declaration) Clone() Node {
	return &Declaration{Property: d.Property, Value: d.Value, Important: d.Important}
}

// CloneWith returns detached copy of the declaration with property and value
// replaced. Importance is kept.
func (d *Declaration) CloneWith(prop, value string) *Declaration {
	return &Declaration{Property: prop, Value: value, Important: d.Important}
}

// Comment keeps source comment including delimiters.
type Comment struct {
	Text string

	parent Parent
}

func (c *Comment) Parent() Parent     { return c.parent }
func (c *Comment) setParent(p Parent) { c.parent = p }
func (c *Comment) Clone() Node        { return &Comment{Text: c.Text} }

// children is an ordered list of nodes shared by all containers. Owner is
// passed explicitly since embedded struct does not know its outer value.
type children struct {
	nodes []Node
}

func (c *children) index(n Node) int {
	return slices.Index(c.nodes, n)
}

func (c *children) append(owner Parent, nodes []Node) {
	for _, n := range nodes {
		detach(n)
		n.setParent(owner)
	}
	c.nodes = append(c.nodes, nodes...)
}

func (c *children) insertBefore(owner Parent, ref Node, nodes []Node) bool {
	if c.index(ref) < 0 {
		return false
	}
	for _, n := range nodes {
		detach(n)
		n.setParent(owner)
	}
	// detaching may have shifted ref when nodes were our own children
	i := c.index(ref)
	c.nodes = slices.Insert(c.nodes, i, nodes...)
	return true
}

func (c *children) remove(n Node) bool {
	i := c.index(n)
	if i < 0 {
		return false
	}
	c.nodes = slices.Delete(c.nodes, i, i+1)
	n.setParent(nil)
	return true
}

func (c *children) clone(owner Parent) []Node {
	if len(c.nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		cn := n.Clone()
		cn.setParent(owner)
		out = append(out, cn)
	}
	return out
}

// detach removes node from its current parent if any.
func detach(n Node) {
	if p := n.Parent(); p != nil {
		p.Remove(n)
	}
}

// Rule is a qualified rule: selector list and a block of children.
type Rule struct {
	Selectors []string

	children
	parent Parent
}

// NewRule creates detached empty rule.
func NewRule(selectors ...string) *Rule {
	return &Rule{Selectors: selectors}
}

// Selector returns selector list as it would be written.
func (r *Rule) Selector() string {
	return strings.Join(r.Selectors, ", ")
}

func (r *Rule) Parent() Parent                            { return r.parent }
func (r *Rule) setParent(p Parent)                        { r.parent = p }
func (r *Rule) Nodes() []Node                             { return r.nodes }
func (r *Rule) Append(nodes ...Node)                      { r.append(r, nodes) }
func (r *Rule) InsertBefore(ref Node, nodes ...Node) bool { return r.insertBefore(r, ref, nodes) }
func (r *Rule) Remove(n Node) bool                        { return r.remove(n) }

func (r *Rule) Clone() Node {
	out := r.CloneEmpty()
	out.nodes = r.clone(out)
	return out
}

// CloneEmpty returns detached copy of the rule without children.
func (r *Rule) CloneEmpty() *Rule {
	return &Rule{Selectors: slices.Clone(r.Selectors)}
}

// AtRule represents @-rule with or without block.
type AtRule struct {
	Name     string // Name without leading '@', e.g. "media"
	Params   string // Prelude, e.g. "screen and (min-width: 10em)"
	HasBlock bool

	children
	parent Parent
}

func (a *AtRule) Parent() Parent                            { return a.parent }
func (a *AtRule) setParent(p Parent)                        { a.parent = p }
func (a *AtRule) Nodes() []Node                             { return a.nodes }
func (a *AtRule) Append(nodes ...Node)                      { a.HasBlock = true; a.append(a, nodes) }
func (a *AtRule) InsertBefore(ref Node, nodes ...Node) bool { return a.insertBefore(a, ref, nodes) }
func (a *AtRule) Remove(n Node) bool                        { return a.remove(n) }

func (a *AtRule) Clone() Node {
	out := &AtRule{Name: a.Name, Params: a.Params, HasBlock: a.HasBlock}
	out.nodes = a.clone(out)
	return out
}

// Stylesheet is the root of the tree.
type Stylesheet struct {
	Warnings []string // Problems found while parsing

	children
}

func (s *Stylesheet) Parent() Parent                            { return nil }
func (s *Stylesheet) setParent(Parent)                          {}
func (s *Stylesheet) Nodes() []Node                             { return s.nodes }
func (s *Stylesheet) Append(nodes ...Node)                      { s.append(s, nodes) }
func (s *Stylesheet) InsertBefore(ref Node, nodes ...Node) bool { return s.insertBefore(s, ref, nodes) }
func (s *Stylesheet) Remove(n Node) bool                        { return s.remove(n) }

func (s *Stylesheet) Clone() Node {
	out := &Stylesheet{Warnings: slices.Clone(s.Warnings)}
	out.nodes = s.clone(out)
	return out
}

// Declarations returns all declarations of the stylesheet in depth-first
// source order. Returned slice is a snapshot and is not affected by later
// tree modifications.
func (s *Stylesheet) Declarations() []*Declaration {
	var decls []*Declaration
	var walk func(p Parent)
	walk = func(p Parent) {
		for _, n := range p.Nodes() {
			switch v := n.(type) {
			case *Declaration:
				decls = append(decls, v)
			case Parent:
				walk(v)
			}
		}
	}
	walk(s)
	return decls
}

// WalkDecls calls fn for every declaration present in the stylesheet when
// walk starts. Declarations inserted by fn are not visited, declarations
// detached by fn before being reached are skipped.
func (s *Stylesheet) WalkDecls(fn func(d *Declaration)) {
	for _, d := range s.Declarations() {
		if d.Parent() == nil {
			continue
		}
		fn(d)
	}
}
