package captcha

import "math/rand/v2"

// Canvas and shape geometry. Positions are drawn from a 3x3 grid with
// bounded per-cell jitter so rings never collide but still look organic.
const (
	CanvasSize = 300
	gridSide   = 3
	cellSize   = CanvasSize / gridSide
	cellJitter = 14

	MinShapes = 5
	MaxShapes = 7

	minRadius = 22
	maxRadius = 28
)

// Shape describes one ring of the visual puzzle.
type Shape struct {
	X           int
	Y           int
	Radius      int
	Broken      bool
	GapRotation int
}

// Puzzle is the generated geometry together with its answer key.
// BrokenIndex is the position of the single broken ring in Shapes.
type Puzzle struct {
	Shapes      []Shape
	BrokenIndex int
}

// GeneratePuzzle produces a ring puzzle with between MinShapes and MaxShapes
// rings, exactly one of which is broken. Only the broken ring carries a gap
// rotation; radius varies per ring for visual variety and does not affect
// correctness.
func GeneratePuzzle() Puzzle {
	n := MinShapes + rand.IntN(MaxShapes-MinShapes+1)
	brokenIndex := rand.IntN(n)

	cells := rand.Perm(gridSide * gridSide)[:n]

	shapes := make([]Shape, n)
	for i, cell := range cells {
		col := cell % gridSide
		row := cell / gridSide

		shape := Shape{
			X:      col*cellSize + cellSize/2 + jitter(),
			Y:      row*cellSize + cellSize/2 + jitter(),
			Radius: minRadius + rand.IntN(maxRadius-minRadius+1),
		}
		if i == brokenIndex {
			shape.Broken = true
			shape.GapRotation = rand.IntN(360)
		}
		shapes[i] = shape
	}

	return Puzzle{Shapes: shapes, BrokenIndex: brokenIndex}
}

func jitter() int {
	return rand.IntN(2*cellJitter+1) - cellJitter
}
