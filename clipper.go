package gui

import "math"

// visibleRows returns the half-open range [first, last) of fixed-height rows
// that intersect the viewport [offset, offset+viewHeight) in content space.
func visibleRows(n int, rowHeight, viewHeight, offset float32) (first, last int) {
	if n == 0 || rowHeight <= 0 || viewHeight <= 0 {
		return 0, 0
	}
	first = max(FloorDiv(offset, rowHeight), 0)
	last = int(math.Ceil(float64((offset + viewHeight) / rowHeight)))
	return min(first, n), min(last, n)
}

// scrollToRow returns the offset that brings row idx fully into view, moving
// as little as possible. An offset that already shows it is returned as is.
func scrollToRow(idx int, rowHeight, viewHeight, offset float32) float32 {
	top := float32(idx) * rowHeight
	bottom := top + rowHeight
	switch {
	case top < offset:
		return top
	case bottom > offset+viewHeight:
		return bottom - viewHeight
	}
	return offset
}
