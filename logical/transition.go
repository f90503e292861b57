package logical

import (
	"slices"
	"strings"

	"logicss/common"
	"logicss/css"
)

// physicalNames maps logical property name to physical names it expands to
// for ltr and rtl. Built from the table so both always agree.
var physicalNames map[string][2][]string

func init() {
	physicalNames = make(map[string][2][]string)

	var names []string
	sides := []string{"block", "block-start", "block-end", "inline", "inline-start", "inline-end", "start", "end"}
	for _, prefix := range []string{"margin", "padding", "inset", "border"} {
		for _, side := range sides {
			names = append(names, prefix+"-"+side)
			if prefix == "border" {
				for _, suffix := range []string{"-width", "-style", "-color"} {
					names = append(names, prefix+"-"+side+suffix)
				}
			}
		}
	}
	for _, corner := range []string{"start-start", "start-end", "end-start", "end-end"} {
		names = append(names, "border-"+corner+"-radius")
	}
	for _, axis := range []string{"block", "inline"} {
		for _, prefix := range []string{"", "min-", "max-"} {
			names = append(names, prefix+axis+"-size")
		}
	}

	for _, name := range names {
		fn, ok := transforms[NormalizeName(name)]
		if !ok {
			continue
		}
		var entry [2][]string
		for i, dir := range []common.Direction{common.DirectionLtr, common.DirectionRtl} {
			d := css.NewDeclaration(name, "0")
			for _, n := range fn(d, splitValue(name, d.Value), dir) {
				if decl, ok := n.(*css.Declaration); ok && !slices.Contains(entry[i], decl.Property) {
					entry[i] = append(entry[i], decl.Property)
				}
			}
		}
		if len(entry[0]) > 0 {
			physicalNames[name] = entry
		}
	}
}

// transitionValue rewrites comma separated transition items replacing
// logical property names, changed reports whether anything was replaced.
func transitionValue(value string, dir common.Direction) (result string, changed bool) {
	idx := 0
	if dir == common.DirectionRtl {
		idx = 1
	}
	var items []string
	for _, item := range SplitByComma(value) {
		words := SplitBySpace(item)
		pos := slices.IndexFunc(words, func(w string) bool {
			_, ok := physicalNames[strings.ToLower(w)]
			return ok
		})
		if pos < 0 {
			items = append(items, item)
			continue
		}
		changed = true
		for _, name := range physicalNames[strings.ToLower(words[pos])][idx] {
			w := slices.Clone(words)
			w[pos] = name
			items = append(items, strings.Join(w, " "))
		}
	}
	return strings.Join(items, ", "), changed
}

// transformTransition handles transition and transition-property.
func transformTransition(d *css.Declaration, _ []string, dir common.Direction) []css.Node {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	if dir.IsFixed() {
		value, changed := transitionValue(d.Value, dir)
		if !changed {
			return nil
		}
		return asNodes(d.CloneWith(prop, value))
	}
	ltr, changed := transitionValue(d.Value, common.DirectionLtr)
	if !changed {
		return nil
	}
	rtl, _ := transitionValue(d.Value, common.DirectionRtl)
	return byDirection(d, dir,
		[]*css.Declaration{d.CloneWith(prop, ltr)},
		[]*css.Declaration{d.CloneWith(prop, rtl)},
	)
}
