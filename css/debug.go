package css

import (
	"logicss/utils/debug"
)

// Dump returns a readable tree of the stylesheet.
// It exists solely for manual inspection during debugging.
func (s *Stylesheet) Dump() string {
	if s == nil {
		return "<nil Stylesheet>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Stylesheet (%d nodes, %d warnings)", len(s.nodes), len(s.Warnings))
	dumpNodes(tw, s.nodes, 1)
	for _, w := range s.Warnings {
		tw.TextBlock(1, "Warning", w)
	}
	return tw.String()
}

func dumpNodes(tw *debug.TreeWriter, nodes []Node, depth int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Declaration:
			tw.Line(depth, "Declaration property=%q value=%q important=%t", v.Property, v.Value, v.Important)
		case *Comment:
			tw.TextBlock(depth, "Comment", v.Text)
		case *Rule:
			tw.Line(depth, "Rule selectors=%q (%d nodes)", v.Selectors, len(v.nodes))
			dumpNodes(tw, v.nodes, depth+1)
		case *AtRule:
			tw.Line(depth, "AtRule name=%q params=%q block=%t (%d nodes)", v.Name, v.Params, v.HasBlock, len(v.nodes))
			dumpNodes(tw, v.nodes, depth+1)
		}
	}
}
