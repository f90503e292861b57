package logical

import (
	"regexp"
	"strings"

	"logicss/common"
	"logicss/css"
)

func keyword(d *css.Declaration) string {
	return strings.ToLower(strings.TrimSpace(d.Value))
}

// flowRelative maps value keywords of float, clear and text-align to left or
// right, property name is kept.
func flowRelative(start, end string) transformFunc {
	return func(d *css.Declaration, _ []string, dir common.Direction) []css.Node {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		left := []*css.Declaration{d.CloneWith(prop, "left")}
		right := []*css.Declaration{d.CloneWith(prop, "right")}
		switch keyword(d) {
		case start:
			return byDirection(d, dir, left, right)
		case end:
			return byDirection(d, dir, right, left)
		}
		return nil
	}
}

func transformResize(d *css.Declaration, _ []string, _ common.Direction) []css.Node {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	switch keyword(d) {
	case "block":
		return asNodes(d.CloneWith(prop, "vertical"))
	case "inline":
		return asNodes(d.CloneWith(prop, "horizontal"))
	}
	return nil
}

var (
	blockSizePattern  = regexp.MustCompile(`(^|-)block-size$`)
	inlineSizePattern = regexp.MustCompile(`(^|-)inline-size$`)
)

// transformSize renames [min-|max-]block-size and inline-size to height and
// width. Plain size (as in @page) is not logical.
func transformSize(d *css.Declaration, _ []string, _ common.Direction) []css.Node {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	switch {
	case blockSizePattern.MatchString(prop):
		prop = blockSizePattern.ReplaceAllString(prop, "${1}height")
	case inlineSizePattern.MatchString(prop):
		prop = inlineSizePattern.ReplaceAllString(prop, "${1}width")
	default:
		return nil
	}
	return asNodes(d.CloneWith(prop, d.Value))
}
