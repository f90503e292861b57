package css

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// WriteTo writes the stylesheet to w in tree order, implementing io.WriterTo.
// Top level items are separated by blank line, nested items are indented.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, n := range s.nodes {
		if i > 0 {
			k, err := fmt.Fprint(w, "\n")
			total += int64(k)
			if err != nil {
				return total, err
			}
		}
		k, err := writeNode(w, n, 0)
		total += int64(k)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// String returns the declaration as it would be written in a block.
func (d *Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

func writeNode(w io.Writer, n Node, depth int) (int, error) {
	indent := strings.Repeat(indentUnit, depth)
	switch v := n.(type) {
	case *Declaration:
		return fmt.Fprintf(w, "%s%s;\n", indent, v)
	case *Comment:
		return fmt.Fprintf(w, "%s%s\n", indent, v.Text)
	case *Rule:
		return writeBlock(w, indent+v.Selector(), v.nodes, depth)
	case *AtRule:
		head := indent + "@" + v.Name
		if v.Params != "" {
			head += " " + v.Params
		}
		if !v.HasBlock {
			return fmt.Fprintf(w, "%s;\n", head)
		}
		return writeBlock(w, head, v.nodes, depth)
	default:
		return 0, fmt.Errorf("unexpected node type %T", n)
	}
}

// writeBlock writes "head {", children and closing brace.
func writeBlock(w io.Writer, head string, nodes []Node, depth int) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", head)
	total += n
	if err != nil {
		return total, err
	}
	for _, child := range nodes {
		n, err = writeNode(w, child, depth+1)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", strings.Repeat(indentUnit, depth))
	total += n
	return total, err
}
