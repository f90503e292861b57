// The only reason this package exists is because both configuration and the
// rewriter need the same enums and I do not want rewriter to depend on the
// configuration package. So enums live separately.
package common

// Specification of text direction used when mapping logical sides to
// physical ones. Unset means direction is decided by the browser with :dir()
// selectors.
// ENUM(unset, ltr, rtl)
type Direction int

// IsFixed returns true if direction is known at processing time.
func (d Direction) IsFixed() bool {
	return d == DirectionLtr || d == DirectionRtl
}
