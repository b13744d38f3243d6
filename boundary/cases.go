// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"strings"
)

// BoundaryCase enumerates the support configurations.
type BoundaryCase int

const (
	// AllLeft clamps the whole left edge.
	AllLeft BoundaryCase = iota
	// AllRight clamps the whole right edge.
	AllRight
	// AllTop clamps the whole top edge.
	AllTop
	// AllBottom clamps the whole bottom edge.
	AllBottom
	// AllLeftRight clamps the left and right edges.
	AllLeftRight
	// AllTopBottom clamps the top and bottom edges.
	AllTopBottom
	// LTLB clamps the left-top and left-bottom corners.
	LTLB
	// RTRB clamps the right-top and right-bottom corners.
	RTRB
	// LTRT clamps the left-top and right-top corners.
	LTRT
	// LBRB clamps the left-bottom and right-bottom corners.
	LBRB
	// LTRB clamps the left-top and right-bottom corners.
	LTRB
	// LBRT clamps the left-bottom and right-top corners.
	LBRT

	boundaryCaseCount
)

var boundaryNames = [boundaryCaseCount]string{
	AllLeft:      "ALL_LEFT",
	AllRight:     "ALL_RIGHT",
	AllTop:       "ALL_TOP",
	AllBottom:    "ALL_BOTTOM",
	AllLeftRight: "ALL_LEFT_RIGHT",
	AllTopBottom: "ALL_TOP_BOTTOM",
	LTLB:         "LT_LB",
	RTRB:         "RT_RB",
	LTRT:         "LT_RT",
	LBRB:         "LB_RB",
	LTRB:         "LT_RB",
	LBRT:         "LB_RT",
}

// Valid reports whether b is one of the declared cases.
func (b BoundaryCase) Valid() bool { return b >= 0 && b < boundaryCaseCount }

// String returns the canonical upper-snake name, e.g. "ALL_LEFT".
func (b BoundaryCase) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BoundaryCase(%d)", int(b))
	}
	return boundaryNames[b]
}

// BoundaryCases lists every declared case in declaration order.
func BoundaryCases() []BoundaryCase {
	out := make([]BoundaryCase, boundaryCaseCount)
	for i := range out {
		out[i] = BoundaryCase(i)
	}
	return out
}

// LoadCase enumerates the load positions: {Bottom, Middle, Top} × {Left, Middle, Right}.
type LoadCase int

const (
	// BLeft loads the bottom-left node.
	BLeft LoadCase = iota
	// BMiddle loads the bottom-middle node.
	BMiddle
	// BRight loads the bottom-right node.
	BRight
	// MLeft loads the middle-left node.
	MLeft
	// MMiddle loads the center node.
	MMiddle
	// MRight loads the middle-right node.
	MRight
	// TLeft loads the top-left node.
	TLeft
	// TMiddle loads the top-middle node.
	TMiddle
	// TRight loads the top-right node.
	TRight

	loadCaseCount
)

var loadNames = [loadCaseCount]string{
	BLeft:   "B_LEFT",
	BMiddle: "B_MIDDLE",
	BRight:  "B_RIGHT",
	MLeft:   "M_LEFT",
	MMiddle: "M_MIDDLE",
	MRight:  "M_RIGHT",
	TLeft:   "T_LEFT",
	TMiddle: "T_MIDDLE",
	TRight:  "T_RIGHT",
}

// Valid reports whether l is one of the declared cases.
func (l LoadCase) Valid() bool { return l >= 0 && l < loadCaseCount }

// String returns the canonical upper-snake name, e.g. "B_RIGHT".
func (l LoadCase) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LoadCase(%d)", int(l))
	}
	return loadNames[l]
}

// LoadCases lists every declared case in declaration order.
func LoadCases() []LoadCase {
	out := make([]LoadCase, loadCaseCount)
	for i := range out {
		out[i] = LoadCase(i)
	}
	return out
}

// ParseBoundaryCase maps a case name such as "ALL_LEFT" or "lt-lb" to its
// BoundaryCase. Matching ignores case and treats '-' as '_'.
func ParseBoundaryCase(s string) (BoundaryCase, error) {
	key := normalize(s)
	for b, name := range boundaryNames {
		if name == key {
			return BoundaryCase(b), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownBoundaryCase)
}

// ParseLoadCase maps a case name such as "B_RIGHT" to its LoadCase.
func ParseLoadCase(s string) (LoadCase, error) {
	key := normalize(s)
	for l, name := range loadNames {
		if name == key {
			return LoadCase(l), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLoadCase)
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
