package logical

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitBySpace splits value on whitespace outside of functions and quoted
// strings. Parts are trimmed, empty parts are dropped.
func SplitBySpace(value string) []string {
	return splitTopLevel(value, unicode.IsSpace)
}

// SplitBySlash splits value on '/' outside of functions and quoted strings.
func SplitBySlash(value string) []string {
	return splitTopLevel(value, func(r rune) bool { return r == '/' })
}

// SplitByComma splits value on ',' outside of functions and quoted strings.
func SplitByComma(value string) []string {
	return splitTopLevel(value, func(r rune) bool { return r == ',' })
}

func splitTopLevel(value string, isSep func(rune) bool) []string {
	var (
		parts   []string
		depth   int
		quote   rune
		escaped bool
		start   int
	)
	flush := func(end int) {
		if part := strings.TrimSpace(value[start:end]); part != "" {
			parts = append(parts, part)
		}
	}
	for i, r := range value {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isSep(r):
			flush(i)
			start = i + utf8.RuneLen(r)
		}
	}
	flush(len(value))
	return parts
}

// slashSplitPattern selects border shorthands whose per-side values may
// contain spaces and so are separated by slash.
var slashSplitPattern = regexp.MustCompile(`(?i)^border(?:-block|-inline|-start|-end)?(-width|-style|-color)?$`)

// splitValue splits declaration value into positional parts according to
// property family. Border width, style and color accept single token per side
// so they fall back to spaces when no slash is present.
func splitValue(prop, value string) []string {
	m := slashSplitPattern.FindStringSubmatch(strings.TrimSpace(prop))
	if m == nil {
		return SplitBySpace(value)
	}
	groups := SplitBySlash(value)
	if len(groups) == 1 && m[1] != "" {
		return SplitBySpace(groups[0])
	}
	return groups
}

// fourSides fills top, right, bottom and left from 1 to 4 values following
// the CSS shorthand rule: missing values repeat the opposite side.
func fourSides(values []string) (top, right, bottom, left string, ok bool) {
	switch len(values) {
	case 1:
		return values[0], values[0], values[0], values[0], true
	case 2:
		return values[0], values[1], values[0], values[1], true
	case 3:
		return values[0], values[1], values[2], values[1], true
	case 4:
		return values[0], values[1], values[2], values[3], true
	}
	return "", "", "", "", false
}

// pair returns values for start and end of an axis from 1 or 2 values.
func pair(values []string) (start, end string, ok bool) {
	switch len(values) {
	case 1:
		return values[0], values[0], true
	case 2:
		return values[0], values[1], true
	}
	return "", "", false
}

// stripLogical removes leading "logical" keyword which switches physical
// shorthand (margin, padding, border) into logical mode. The keyword may be
// glued to the first group when value was split by slash.
func stripLogical(values []string) ([]string, bool) {
	if len(values) == 0 {
		return values, false
	}
	first := values[0]
	kw, rest := first, ""
	if i := strings.IndexFunc(first, unicode.IsSpace); i >= 0 {
		kw, rest = first[:i], strings.TrimSpace(first[i:])
	}
	if !strings.EqualFold(kw, "logical") {
		return values, false
	}
	out := make([]string, 0, len(values))
	if rest != "" {
		out = append(out, rest)
	}
	return append(out, values[1:]...), true
}
