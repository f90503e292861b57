package logical

import (
	"strings"

	"logicss/common"
	"logicss/css"
)

func asNodes(decls ...*css.Declaration) []css.Node {
	out := make([]css.Node, 0, len(decls))
	for _, d := range decls {
		out = append(out, d)
	}
	return out
}

// byDirection picks replacement for direction sensitive expansion. With
// fixed direction this is the matching set of declarations, otherwise a pair
// of rules guarded by :dir(). When both directions agree no rules are needed.
func byDirection(d *css.Declaration, dir common.Direction, ltr, rtl []*css.Declaration) []css.Node {
	switch dir {
	case common.DirectionLtr:
		return asNodes(ltr...)
	case common.DirectionRtl:
		return asNodes(rtl...)
	}
	if sameDeclarations(ltr, rtl) {
		return asNodes(ltr...)
	}
	return []css.Node{
		dirRule(d, common.DirectionLtr, ltr),
		dirRule(d, common.DirectionRtl, rtl),
	}
}

// sameDeclarations reports whether both lists set the same properties to the
// same values, order is not important.
func sameDeclarations(a, b []*css.Declaration) bool {
	if len(a) != len(b) {
		return false
	}
	values := make(map[string]string, len(a))
	for _, d := range a {
		values[d.Property] = d.Value
	}
	for _, d := range b {
		if v, ok := values[d.Property]; !ok || v != d.Value {
			return false
		}
	}
	return true
}

// dirRule wraps declarations into a copy of the declaration's rule with every
// selector limited to the direction. Declarations outside of a rule get
// nesting selector.
func dirRule(d *css.Declaration, dir common.Direction, decls []*css.Declaration) *css.Rule {
	var rule *css.Rule
	if parent, ok := d.Parent().(*css.Rule); ok {
		rule = parent.CloneEmpty()
	} else {
		rule = css.NewRule("&")
	}
	for i, sel := range rule.Selectors {
		rule.Selectors[i] = withDir(sel, dir)
	}
	for _, decl := range decls {
		rule.Append(decl)
	}
	return rule
}

// withDir appends :dir() pseudo-class to selector, pseudo-class has to go
// before pseudo-element.
func withDir(sel string, dir common.Direction) string {
	pc := ":dir(" + dir.String() + ")"
	if i := strings.LastIndex(sel, "::"); i >= 0 {
		return sel[:i] + pc + sel[i:]
	}
	return sel + pc
}
