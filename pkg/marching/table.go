package marching

// corner names one of the eight points a square can emit.
type corner uint8

const (
	topLeft corner = iota
	topRight
	bottomRight
	bottomLeft
	centerTop
	centerRight
	centerBottom
	centerLeft
)

// configurations lists, per 4-bit square configuration, the ordered points
// fanned into triangles from the first point. Orders are chosen so every
// outline runs with the same handedness.
var configurations = [16][]corner{
	0: nil,

	// One corner.
	1: {centerLeft, centerBottom, bottomLeft},
	2: {bottomRight, centerBottom, centerRight},
	4: {topRight, centerRight, centerTop},
	8: {topLeft, centerTop, centerLeft},

	// Two corners.
	3:  {centerRight, bottomRight, bottomLeft, centerLeft},
	6:  {centerTop, topRight, bottomRight, centerBottom},
	9:  {topLeft, centerTop, centerBottom, bottomLeft},
	12: {topLeft, topRight, centerRight, centerLeft},
	5:  {centerTop, topRight, centerRight, centerBottom, bottomLeft, centerLeft},
	10: {topLeft, centerTop, centerRight, bottomRight, centerBottom, centerLeft},

	// Three corners.
	7:  {centerTop, topRight, bottomRight, bottomLeft, centerLeft},
	11: {topLeft, centerTop, centerRight, bottomRight, bottomLeft},
	13: {topLeft, topRight, centerRight, centerBottom, bottomLeft},
	14: {topLeft, topRight, bottomRight, centerBottom, centerLeft},

	// Solid.
	15: {topLeft, topRight, bottomRight, bottomLeft},
}

// node resolves a corner name to its arena index.
func (s Square) node(c corner) int {
	switch c {
	case topLeft:
		return s.TopLeft
	case topRight:
		return s.TopRight
	case bottomRight:
		return s.BottomRight
	case bottomLeft:
		return s.BottomLeft
	case centerTop:
		return s.CenterTop
	case centerRight:
		return s.CenterRight
	case centerBottom:
		return s.CenterBottom
	default:
		return s.CenterLeft
	}
}

// triangles returns how many fan triangles a point list produces.
func triangles(points []corner) int {
	return max(len(points)-2, 0)
}
