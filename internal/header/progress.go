// Package header maps the scroll position of the content list to the
// collapse state of the calendar header.
package header

import "math"

// Progress returns how far the header has collapsed, from 0 (fully expanded)
// to 1 (collapsed to a single week row).
//
// scrollOffsetFromTop is the header's offset from its resting position and
// goes negative as the content scrolls up. collapsedHeight does not enter the
// ratio. A zero expandedExtraHeight yields 0.
func Progress(scrollOffsetFromTop, collapsedHeight, expandedExtraHeight float64) float64 {
	if expandedExtraHeight == 0 {
		return 0
	}
	return clamp(-scrollOffsetFromTop/expandedExtraHeight, 0, 1)
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
