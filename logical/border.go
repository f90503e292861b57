package logical

import (
	"strings"

	"logicss/common"
	"logicss/css"
)

// borderSide adapts side expansion to border-<side>[-width|-style|-color]
// properties.
func borderSide(fn sideFunc) transformFunc {
	return func(d *css.Declaration, values []string, dir common.Direction) []css.Node {
		name, ok := borderNamer(d.Property)
		if !ok {
			return nil
		}
		return fn(d, values, dir, name)
	}
}

// borderRadius maps logical corner to physical corners for both directions.
func borderRadius(ltr, rtl string) transformFunc {
	return func(d *css.Declaration, _ []string, dir common.Direction) []css.Node {
		return byDirection(d, dir,
			[]*css.Declaration{d.CloneWith("border-"+ltr+"-radius", d.Value)},
			[]*css.Declaration{d.CloneWith("border-"+rtl+"-radius", d.Value)},
		)
	}
}

// transformBorder handles border, border-width, border-style and
// border-color with leading "logical" keyword. Without the keyword these are
// physical and left alone.
func transformBorder(d *css.Declaration, values []string, dir common.Direction) []css.Node {
	values, ok := stripLogical(values)
	if !ok || len(values) == 0 {
		return nil
	}
	m := borderPattern.FindStringSubmatch(strings.TrimSpace(d.Property))
	if m == nil {
		return nil
	}
	if len(values) == 1 {
		return asNodes(d.CloneWith(strings.ToLower(d.Property), values[0]))
	}
	suffix := strings.ToLower(m[1])
	return fourLogicalSides(d, values, dir, func(side string) string { return "border-" + side + suffix })
}
