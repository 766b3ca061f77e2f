package domain

// Visible extent of the map in degrees.
type Span struct {
	LatDelta float64
	LonDelta float64
}

// Zoom used when centering the map on the user or on a saved pin.
// Smaller deltas zoom further in.
var DefaultSpan = Span{LatDelta: 0.1, LonDelta: 0.1}

// Represents the map viewport: a center point and the span around it.
type Region struct {
	Center Coordinates
	Span   Span
}

func RegionAround(c Coordinates) Region {
	return Region{Center: c, Span: DefaultSpan}
}
