package entity

// Endpoint is a contact point of a strand in image coordinates.
// Col is fractional because the top endpoint is averaged across the strand width.
type Endpoint struct {
	Row int     `json:"row"`
	Col float64 `json:"col"`
}

// StrandRecord holds one detected strand with its contact points.
type StrandRecord struct {
	Mask   Mask
	Top    Endpoint
	Bottom Endpoint
}

// EndpointSet holds index-aligned top and bottom contact points:
// Tops[i] and Bottoms[i] belong to the same strand.
type EndpointSet struct {
	Tops    []Endpoint `json:"tops"`
	Bottoms []Endpoint `json:"bottoms"`
	// Inferred is the index of the synthesized pair, -1 when every strand was detected.
	Inferred int `json:"inferred"`
}

// Len returns the number of strand pairs.
func (s EndpointSet) Len() int {
	return len(s.Tops)
}
