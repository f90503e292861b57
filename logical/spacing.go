package logical

import (
	"strings"

	"logicss/common"
	"logicss/css"
)

// spacingSide adapts side expansion to margin-*, padding-* and inset-*
// properties.
func spacingSide(fn sideFunc) transformFunc {
	return func(d *css.Declaration, values []string, dir common.Direction) []css.Node {
		name, ok := sideNamer(d.Property)
		if !ok {
			return nil
		}
		return fn(d, values, dir, name)
	}
}

// transformInset handles inset shorthand which is always logical, optional
// "logical" keyword is accepted and dropped.
func transformInset(d *css.Declaration, values []string, dir common.Direction) []css.Node {
	if v, ok := stripLogical(values); ok {
		values = v
	}
	return fourLogicalSides(d, values, dir, func(side string) string { return side })
}

// transformSpacing handles margin and padding shorthands with leading
// "logical" keyword.
func transformSpacing(d *css.Declaration, values []string, dir common.Direction) []css.Node {
	values, ok := stripLogical(values)
	if !ok {
		return nil
	}
	prefix := strings.ToLower(strings.TrimSpace(d.Property))
	return fourLogicalSides(d, values, dir, func(side string) string { return prefix + "-" + side })
}
