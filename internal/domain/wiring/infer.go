package wiring

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"wiring-inspector/internal/domain/entity"
)

// bottomInferOffset is the lateral offset of a synthesized bottom contact
// from the outermost known one.
const bottomInferOffset = 5

// Complete returns the endpoint set of the inspection. When exactly three
// strands were detected a fourth pair is synthesized from their spacing and
// appended at index 3. Tops and bottoms are inferred independently because
// the two sides of a connector can be offset from each other.
func Complete(records []entity.StrandRecord) (entity.EndpointSet, error) {
	if len(records) < entity.MinStrands {
		return entity.EndpointSet{}, &entity.DetectionError{Found: len(records), Err: entity.ErrDetectionInsufficient}
	}

	set := entity.EndpointSet{
		Tops:     make([]entity.Endpoint, 0, entity.ExpectedStrands),
		Bottoms:  make([]entity.Endpoint, 0, entity.ExpectedStrands),
		Inferred: -1,
	}
	for _, r := range records {
		set.Tops = append(set.Tops, r.Top)
		set.Bottoms = append(set.Bottoms, r.Bottom)
	}

	if len(records) >= entity.ExpectedStrands {
		return set, nil
	}

	set.Tops = append(set.Tops, inferTop(set.Tops))
	set.Bottoms = append(set.Bottoms, inferBottom(set.Bottoms))
	set.Inferred = len(set.Tops) - 1

	return set, nil
}

// inferTop places the missing top contact one tight gap away from an outer strand.
func inferTop(tops []entity.Endpoint) entity.Endpoint {
	s := sortedByCol(tops)
	x0, x1, x2 := s[0].Col, s[1].Col, s[2].Col

	g1, g2 := x1-x0, x2-x1
	width := math.Min(g1, g2)

	col := x0 + width
	if g1 < g2 {
		col = x2 - width
	}

	return entity.Endpoint{Row: meanRow(s), Col: col}
}

// inferBottom places the missing bottom contact just right of the rightmost
// known one, or just left when all known contacts share a column.
func inferBottom(bottoms []entity.Endpoint) entity.Endpoint {
	s := sortedByCol(bottoms)

	col := s[len(s)-1].Col + bottomInferOffset
	if distinctCols(s) == 1 {
		col = s[0].Col - bottomInferOffset
	}

	return entity.Endpoint{Row: meanRow(s), Col: col}
}

func sortedByCol(points []entity.Endpoint) []entity.Endpoint {
	s := make([]entity.Endpoint, len(points))
	copy(s, points)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Col < s[j].Col })
	return s
}

// meanRow is the truncated mean row.
func meanRow(points []entity.Endpoint) int {
	rows := make([]float64, len(points))
	for i, p := range points {
		rows[i] = float64(p.Row)
	}
	return int(stat.Mean(rows, nil))
}

func distinctCols(points []entity.Endpoint) int {
	seen := make(map[float64]struct{}, len(points))
	for _, p := range points {
		seen[p.Col] = struct{}{}
	}
	return len(seen)
}
