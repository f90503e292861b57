// Package logical rewrites CSS logical properties (margin-inline-start,
// border-block-color, inset and friends) into their physical equivalents.
//
// Rewriter walks declarations of already parsed stylesheet, normalizes
// property name, splits value into positional parts and looks up expansion
// function in a static table. Expansion produces replacement declarations
// which are inserted in front of the original one, or, when text direction is
// not known in advance, a pair of rules guarded by :dir(ltr) and :dir(rtl)
// selectors which are inserted in front of the declaration's rule. Original
// declaration is removed unless asked to preserve it.
//
// Unknown properties and unexpected value shapes are left as they are, there
// is no error path.
package logical
