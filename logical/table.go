package logical

import (
	"strings"

	"logicss/common"
	"logicss/css"
)

// transformFunc produces replacement nodes for the declaration. Values are
// positional parts of declaration value. Returning nil leaves declaration
// untouched.
type transformFunc func(d *css.Declaration, values []string, dir common.Direction) []css.Node

// transforms is keyed by normalized property name.
var transforms = map[string]transformFunc{
	// border sides and axes
	"border-block":              borderSide(blockAxis),
	"border-block-color":        borderSide(blockAxis),
	"border-block-style":        borderSide(blockAxis),
	"border-block-width":        borderSide(blockAxis),
	"border-block-start":        borderSide(blockStart),
	"border-block-start-color":  borderSide(blockStart),
	"border-block-start-style":  borderSide(blockStart),
	"border-block-start-width":  borderSide(blockStart),
	"border-block-end":          borderSide(blockEnd),
	"border-block-end-color":    borderSide(blockEnd),
	"border-block-end-style":    borderSide(blockEnd),
	"border-block-end-width":    borderSide(blockEnd),
	"border-inline":             borderSide(inlineAxis),
	"border-inline-color":       borderSide(inlineAxis),
	"border-inline-style":       borderSide(inlineAxis),
	"border-inline-width":       borderSide(inlineAxis),
	"border-inline-start":       borderSide(inlineStart),
	"border-inline-start-color": borderSide(inlineStart),
	"border-inline-start-style": borderSide(inlineStart),
	"border-inline-start-width": borderSide(inlineStart),
	"border-inline-end":         borderSide(inlineEnd),
	"border-inline-end-color":   borderSide(inlineEnd),
	"border-inline-end-style":   borderSide(inlineEnd),
	"border-inline-end-width":   borderSide(inlineEnd),
	"border-start":              borderSide(bothStart),
	"border-start-color":        borderSide(bothStart),
	"border-start-style":        borderSide(bothStart),
	"border-start-width":        borderSide(bothStart),
	"border-end":                borderSide(bothEnd),
	"border-end-color":          borderSide(bothEnd),
	"border-end-style":          borderSide(bothEnd),
	"border-end-width":          borderSide(bothEnd),

	// corners
	"border-start-start-radius": borderRadius("top-left", "top-right"),
	"border-start-end-radius":   borderRadius("top-right", "top-left"),
	"border-end-start-radius":   borderRadius("bottom-left", "bottom-right"),
	"border-end-end-radius":     borderRadius("bottom-right", "bottom-left"),

	// physical shorthands in logical mode
	"border":       transformBorder,
	"border-color": transformBorder,
	"border-style": transformBorder,
	"border-width": transformBorder,
	"inset":        transformInset,
	"margin":       transformSpacing,
	"padding":      transformSpacing,

	// margin-*, padding-* and inset-*
	"block":        spacingSide(blockAxis),
	"block-start":  spacingSide(blockStart),
	"block-end":    spacingSide(blockEnd),
	"inline":       spacingSide(inlineAxis),
	"inline-start": spacingSide(inlineStart),
	"inline-end":   spacingSide(inlineEnd),
	"start":        spacingSide(bothStart),
	"end":          spacingSide(bothEnd),

	"clear":      flowRelative("inline-start", "inline-end"),
	"float":      flowRelative("inline-start", "inline-end"),
	"text-align": flowRelative("start", "end"),
	"resize":     transformResize,
	"size":       transformSize,

	"transition":          transformTransition,
	"transition-property": transformTransition,
}

// folded keys are only reachable through prefixed property names, "size" on
// its own is a physical @page property.
var folded = map[string]bool{
	"block": true, "block-start": true, "block-end": true,
	"inline": true, "inline-start": true, "inline-end": true,
	"start": true, "end": true, "size": true,
}

// Supported reports whether property has logical expansion.
func Supported(prop string) bool {
	key := NormalizeName(prop)
	if _, ok := transforms[key]; !ok {
		return false
	}
	return !folded[key] || supportedPropPattern.MatchString(strings.TrimSpace(prop))
}
