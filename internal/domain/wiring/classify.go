package wiring

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"wiring-inspector/internal/domain/entity"
)

// Classify orders the strands by top column and checks that their bottom
// contacts alternate around the centre line (mean bottom column).
//
// Even positions left of centre and odd positions right of it means the
// supply is on the left; the mirrored arrangement means it is on the right.
// Anything else is indeterminate. The returned set is in top-column order,
// with each bottom kept next to its own top.
func Classify(set entity.EndpointSet) (entity.WiringVerdict, entity.EndpointSet, error) {
	n := set.Len()
	if n != entity.ExpectedStrands || len(set.Bottoms) != n {
		return entity.VerdictIndeterminate, entity.EndpointSet{},
			&entity.DetectionError{Found: n, Err: entity.ErrStrandCountUnsupported}
	}

	ordered := orderByTop(set)

	cols := make([]float64, n)
	for i, b := range ordered.Bottoms {
		cols[i] = b.Col
	}
	center := stat.Mean(cols, nil)

	return alternation(cols, center), ordered, nil
}

func orderByTop(set entity.EndpointSet) entity.EndpointSet {
	idx := make([]int, set.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return set.Tops[idx[a]].Col < set.Tops[idx[b]].Col
	})

	out := entity.EndpointSet{
		Tops:     make([]entity.Endpoint, len(idx)),
		Bottoms:  make([]entity.Endpoint, len(idx)),
		Inferred: -1,
	}
	for pos, i := range idx {
		out.Tops[pos] = set.Tops[i]
		out.Bottoms[pos] = set.Bottoms[i]
		if i == set.Inferred {
			out.Inferred = pos
		}
	}
	return out
}

func alternation(cols []float64, center float64) entity.WiringVerdict {
	evenLeft, evenRight := true, true
	oddLeft, oddRight := true, true
	for i, c := range cols {
		if i%2 == 0 {
			evenLeft = evenLeft && c < center
			evenRight = evenRight && c > center
		} else {
			oddLeft = oddLeft && c < center
			oddRight = oddRight && c > center
		}
	}

	switch {
	case evenLeft && oddRight:
		return entity.VerdictLeftSourceCorrect
	case evenRight && oddLeft:
		return entity.VerdictRightSourceCorrect
	default:
		return entity.VerdictIndeterminate
	}
}
