package logical

import (
	"regexp"
	"strings"
)

// supportedPropPattern folds prefixed logical properties to the key used in
// the property table: "margin-inline-start" becomes "inline-start",
// "max-block-size" becomes "size".
var supportedPropPattern = regexp.MustCompile(`(?i)^(?:(?:inset|margin|padding)-(block|block-start|block-end|inline|inline-start|inline-end|start|end)|(?:min-|max-)?(?:block|inline)-(size))$`)

// NormalizeName returns canonical lowercase table key for the property name.
// Names which are not logical pass through lowercased.
func NormalizeName(prop string) string {
	prop = strings.TrimSpace(prop)
	if m := supportedPropPattern.FindStringSubmatch(prop); m != nil {
		return strings.ToLower(m[1] + m[2])
	}
	return strings.ToLower(prop)
}

var sidePrefixPattern = regexp.MustCompile(`(?i)^(inset|margin|padding)-`)

// sideNamer returns function producing physical property names for the
// prefixed side family: margin-inline-start -> margin-left, inset-block ->
// top.
func sideNamer(prop string) (namer, bool) {
	m := sidePrefixPattern.FindStringSubmatch(prop)
	if m == nil {
		return nil, false
	}
	prefix := strings.ToLower(m[1])
	if prefix == "inset" {
		return func(side string) string { return side }, true
	}
	return func(side string) string { return prefix + "-" + side }, true
}

var borderSidePattern = regexp.MustCompile(`(?i)^border-(?:block|block-start|block-end|inline|inline-start|inline-end|start|end)(-width|-style|-color)?$`)

// borderNamer returns function producing physical border property names,
// keeping -width, -style or -color suffix: border-inline-start-color ->
// border-left-color.
func borderNamer(prop string) (namer, bool) {
	m := borderSidePattern.FindStringSubmatch(prop)
	if m == nil {
		return nil, false
	}
	suffix := strings.ToLower(m[1])
	return func(side string) string { return "border-" + side + suffix }, true
}

var borderPattern = regexp.MustCompile(`(?i)^border(-width|-style|-color)?$`)

// namer maps physical side (top, right, bottom, left) to property name.
type namer func(side string) string
