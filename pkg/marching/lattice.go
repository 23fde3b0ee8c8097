package marching

import (
	"github.com/Faultbox/cavegen/pkg/cave"
	"github.com/Faultbox/cavegen/pkg/math"
)

// unassigned marks a node that has not been pushed to the vertex buffer.
const unassigned = -1

// Node is a lattice point that may become a mesh vertex.
type Node struct {
	Position    math.Vec3
	VertexIndex int
	// Perimeter is set on control nodes of the lattice's outer ring.
	Perimeter bool
}

// ControlNode sits at a cell centre and owns the midpoints towards its
// upper (+Z) and right (+X) neighbours. Fields are arena indices.
type ControlNode struct {
	Node   int
	Active bool
	Above  int
	Right  int
}

// Square is the 2×2 block of control nodes around one lattice cell.
// Every field except Configuration is an index into the node arena.
type Square struct {
	TopLeft, TopRight, BottomRight, BottomLeft       int
	CenterTop, CenterRight, CenterBottom, CenterLeft int
	// Configuration packs the active corners: TL·8 + TR·4 + BR·2 + BL·1.
	Configuration int
}

// Lattice is the node arena plus the squares that reference it.
// Squares never hold nodes directly, so shared midpoints resolve to one
// vertex no matter how many squares touch them.
type Lattice struct {
	Nodes    []Node
	Controls []ControlNode
	Squares  []Square

	ControlsX, ControlsY int
	CellSize             float32
	// WorldWidth and WorldHeight are the lattice extent in world units,
	// centred on the origin.
	WorldWidth, WorldHeight float32
}

// NewLattice builds control nodes for every cell of g and one square per
// 2×2 block, scanned x outer, y inner.
func NewLattice(g *cave.Grid, cellSize float32) *Lattice {
	cx, cy := g.Width, g.Height
	l := &Lattice{
		Nodes:       make([]Node, 0, cx*cy*3),
		Controls:    make([]ControlNode, cx*cy),
		ControlsX:   cx,
		ControlsY:   cy,
		CellSize:    cellSize,
		WorldWidth:  float32(cx) * cellSize,
		WorldHeight: float32(cy) * cellSize,
	}

	half := cellSize / 2
	for x := 0; x < cx; x++ {
		for y := 0; y < cy; y++ {
			pos := math.Vec3{
				X: -l.WorldWidth/2 + float32(x)*cellSize + half,
				Z: -l.WorldHeight/2 + float32(y)*cellSize + half,
			}
			l.Controls[y*cx+x] = ControlNode{
				Node:   l.addNode(pos, x == 0 || y == 0 || x == cx-1 || y == cy-1),
				Active: g.At(x, y) == cave.Wall,
				Above:  l.addNode(pos.Add(math.Forward.Scale(half)), false),
				Right:  l.addNode(pos.Add(math.Right.Scale(half)), false),
			}
		}
	}

	if cx < 2 || cy < 2 {
		return l
	}
	l.Squares = make([]Square, 0, (cx-1)*(cy-1))
	for x := 0; x < cx-1; x++ {
		for y := 0; y < cy-1; y++ {
			l.Squares = append(l.Squares, l.newSquare(
				l.control(x, y+1), l.control(x+1, y+1), l.control(x+1, y), l.control(x, y),
			))
		}
	}
	return l
}

func (l *Lattice) addNode(pos math.Vec3, perimeter bool) int {
	l.Nodes = append(l.Nodes, Node{Position: pos, VertexIndex: unassigned, Perimeter: perimeter})
	return len(l.Nodes) - 1
}

func (l *Lattice) control(x, y int) ControlNode {
	return l.Controls[y*l.ControlsX+x]
}

func (l *Lattice) newSquare(topLeft, topRight, bottomRight, bottomLeft ControlNode) Square {
	s := Square{
		TopLeft:      topLeft.Node,
		TopRight:     topRight.Node,
		BottomRight:  bottomRight.Node,
		BottomLeft:   bottomLeft.Node,
		CenterTop:    topLeft.Right,
		CenterRight:  bottomRight.Above,
		CenterBottom: bottomLeft.Right,
		CenterLeft:   bottomLeft.Above,
	}
	if topLeft.Active {
		s.Configuration += 8
	}
	if topRight.Active {
		s.Configuration += 4
	}
	if bottomRight.Active {
		s.Configuration += 2
	}
	if bottomLeft.Active {
		s.Configuration += 1
	}
	return s
}

// GridPoint maps a world position back to lattice coordinates, where
// control node (x, y) sits at (x, y) and midpoints land on halves.
func (l *Lattice) GridPoint(p math.Vec3) math.Vec2 {
	return math.Vec2{
		X: (p.X+l.WorldWidth/2)/l.CellSize - 0.5,
		Y: (p.Z+l.WorldHeight/2)/l.CellSize - 0.5,
	}
}
