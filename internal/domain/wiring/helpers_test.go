package wiring

import "wiring-inspector/internal/domain/entity"

const testSide = 120

// strandMask draws a strand whose upper part starts at column topLeft and
// lower part at column bottomLeft. Top contact: (20, topLeft+2).
// Bottom contact: (100, bottomLeft).
func strandMask(topLeft, bottomLeft int) entity.Mask {
	m := entity.NewMask(testSide, testSide)
	m.FillRect(10, topLeft, 40, topLeft+4)
	m.FillRect(60, bottomLeft, 100, bottomLeft+4)
	return m
}

func records(tops, bottoms []float64) []entity.StrandRecord {
	out := make([]entity.StrandRecord, len(tops))
	for i := range tops {
		out[i] = entity.StrandRecord{
			Top:    entity.Endpoint{Row: 20, Col: tops[i]},
			Bottom: entity.Endpoint{Row: 100, Col: bottoms[i]},
		}
	}
	return out
}

func endpointSet(tops, bottoms []float64) entity.EndpointSet {
	set := entity.EndpointSet{Inferred: -1}
	for i := range tops {
		set.Tops = append(set.Tops, entity.Endpoint{Row: 20, Col: tops[i]})
		set.Bottoms = append(set.Bottoms, entity.Endpoint{Row: 100, Col: bottoms[i]})
	}
	return set
}
