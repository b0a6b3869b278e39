// Package heights contains helpers for working with block-height sequences.
package heights

import "fmt"

// Range is a maximal contiguous run of block heights, inclusive on both ends.
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of heights covered by the range.
func (r Range) Len() uint64 {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("#%d", r.Start)
	}
	return fmt.Sprintf("#%d-#%d", r.Start, r.End)
}

// ToRanges collapses an ascending height list into maximal contiguous ranges.
// Adjacent heights merge into one range; any break starts a new one.
func ToRanges(sorted []uint64) []Range {
	if len(sorted) == 0 {
		return nil
	}

	ranges := make([]Range, 0, 1)
	current := Range{Start: sorted[0], End: sorted[0]}
	for _, h := range sorted[1:] {
		if h == current.End+1 {
			current.End = h
			continue
		}
		ranges = append(ranges, current)
		current = Range{Start: h, End: h}
	}

	return append(ranges, current)
}

// Count sums the sizes of all ranges.
func Count(ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		total += r.Len()
	}
	return total
}
