// Package wiring turns strand masks into contact points and decides whether
// a four-terminal connector is wired correctly.
//
// Every function in the package is pure: inputs are only read, results are
// freshly allocated, so inspections can run concurrently without locking.
package wiring

import (
	"wiring-inspector/internal/domain/entity"
)

// topRefineOffset is how far below the first foreground row the top
// contact is sampled. The first row is usually a thin, noisy tip.
const topRefineOffset = 10

// Extract finds the top and bottom contact points of a single strand mask.
//
// The top contact is the horizontal centre of the strand topRefineOffset rows
// below its first foreground row. The bottom contact is the leftmost
// foreground pixel of the last foreground row, taken as is.
func Extract(mask entity.Mask) (top, bottom entity.Endpoint, err error) {
	r0, c0, ok := firstFromTop(mask)
	if !ok {
		return entity.Endpoint{}, entity.Endpoint{}, entity.ErrMaskEmpty
	}
	top = refineTop(mask, r0, c0)

	br, bc, _ := firstFromBottom(mask)
	bottom = entity.Endpoint{Row: br, Col: float64(bc)}

	return top, bottom, nil
}

// firstFromTop scans rows downwards and, within a row, columns right to left.
func firstFromTop(mask entity.Mask) (row, col int, ok bool) {
	for r := 0; r < mask.Height; r++ {
		for c := mask.Width - 1; c >= 0; c-- {
			if mask.Foreground(r, c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// firstFromBottom scans rows upwards and, within a row, columns left to right.
func firstFromBottom(mask entity.Mask) (row, col int, ok bool) {
	for r := mask.Height - 1; r >= 0; r-- {
		for c := 0; c < mask.Width; c++ {
			if mask.Foreground(r, c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func refineTop(mask entity.Mask, r0, c0 int) entity.Endpoint {
	row := r0 + topRefineOffset
	if row >= mask.Height {
		row = mask.Height - 1
	}

	left, right, ok := rowSpan(mask, row)
	if !ok {
		// strand ends or breaks before the sampling row
		return entity.Endpoint{Row: r0, Col: float64(c0)}
	}
	return entity.Endpoint{Row: row, Col: float64(left+right) / 2}
}

// rowSpan returns the leftmost and rightmost foreground columns of a row.
func rowSpan(mask entity.Mask, row int) (left, right int, ok bool) {
	left, right = -1, -1
	for c := mask.Width - 1; c >= 0; c-- {
		if mask.Foreground(row, c) {
			right = c
			break
		}
	}
	if right < 0 {
		return 0, 0, false
	}
	for c := 0; c < mask.Width; c++ {
		if mask.Foreground(row, c) {
			left = c
			break
		}
	}
	return left, right, true
}
