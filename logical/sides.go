package logical

import (
	"logicss/common"
	"logicss/css"
)

// sideFunc expands single logical side or axis into physical sides, name
// builds physical property name for the side.
type sideFunc func(d *css.Declaration, values []string, dir common.Direction, name namer) []css.Node

func blockAxis(d *css.Declaration, values []string, _ common.Direction, name namer) []css.Node {
	start, end, ok := pair(values)
	if !ok {
		return nil
	}
	return asNodes(d.CloneWith(name("top"), start), d.CloneWith(name("bottom"), end))
}

func blockStart(d *css.Declaration, _ []string, _ common.Direction, name namer) []css.Node {
	return asNodes(d.CloneWith(name("top"), d.Value))
}

func blockEnd(d *css.Declaration, _ []string, _ common.Direction, name namer) []css.Node {
	return asNodes(d.CloneWith(name("bottom"), d.Value))
}

func inlineAxis(d *css.Declaration, values []string, dir common.Direction, name namer) []css.Node {
	start, end, ok := pair(values)
	if !ok {
		return nil
	}
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(name("left"), start), d.CloneWith(name("right"), end)},
		[]*css.Declaration{d.CloneWith(name("right"), start), d.CloneWith(name("left"), end)},
	)
}

func inlineStart(d *css.Declaration, _ []string, dir common.Direction, name namer) []css.Node {
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(name("left"), d.Value)},
		[]*css.Declaration{d.CloneWith(name("right"), d.Value)},
	)
}

func inlineEnd(d *css.Declaration, _ []string, dir common.Direction, name namer) []css.Node {
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(name("right"), d.Value)},
		[]*css.Declaration{d.CloneWith(name("left"), d.Value)},
	)
}

// bothStart sets block-start and inline-start at once.
func bothStart(d *css.Declaration, values []string, dir common.Direction, name namer) []css.Node {
	block, inline, ok := pair(values)
	if !ok {
		return nil
	}
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(name("top"), block), d.CloneWith(name("left"), inline)},
		[]*css.Declaration{d.CloneWith(name("top"), block), d.CloneWith(name("right"), inline)},
	)
}

// bothEnd sets block-end and inline-end at once.
func bothEnd(d *css.Declaration, values []string, dir common.Direction, name namer) []css.Node {
	block, inline, ok := pair(values)
	if !ok {
		return nil
	}
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(name("bottom"), block), d.CloneWith(name("right"), inline)},
		[]*css.Declaration{d.CloneWith(name("bottom"), block), d.CloneWith(name("left"), inline)},
	)
}

// fourLogicalSides maps values given in block-start, inline-end, block-end,
// inline-start order. Inline sides swap for right-to-left.
func fourLogicalSides(d *css.Declaration, values []string, dir common.Direction, name namer) []css.Node {
	top, right, bottom, left, ok := fourSides(values)
	if !ok {
		return nil
	}
	return byDirection(d, dir,
		[]*css.Declaration{
			d.CloneWith(name("top"), top),
			d.CloneWith(name("right"), right),
			d.CloneWith(name("bottom"), bottom),
			d.CloneWith(name("left"), left),
		},
		[]*css.Declaration{
			d.CloneWith(name("top"), top),
			d.CloneWith(name("right"), left),
			d.CloneWith(name("bottom"), bottom),
			d.CloneWith(name("left"), right),
		},
	)
}
