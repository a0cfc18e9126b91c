package captcha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePuzzle_ShapeCountInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := GeneratePuzzle()
		assert.GreaterOrEqual(t, len(p.Shapes), MinShapes)
		assert.LessOrEqual(t, len(p.Shapes), MaxShapes)
	}
}

func TestGeneratePuzzle_ExactlyOneBrokenShape(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := GeneratePuzzle()

		brokenCount := 0
		brokenAt := -1
		for idx, s := range p.Shapes {
			if s.Broken {
				brokenCount++
				brokenAt = idx
			}
		}

		require.Equal(t, 1, brokenCount)
		assert.Equal(t, p.BrokenIndex, brokenAt)
	}
}

func TestGeneratePuzzle_OnlyBrokenShapeCarriesGapRotation(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := GeneratePuzzle()
		for idx, s := range p.Shapes {
			if idx == p.BrokenIndex {
				assert.GreaterOrEqual(t, s.GapRotation, 0)
				assert.Less(t, s.GapRotation, 360)
			} else {
				assert.Zero(t, s.GapRotation)
			}
		}
	}
}

func TestGeneratePuzzle_RadiusWithinBand(t *testing.T) {
	for i := 0; i < 100; i++ {
		for _, s := range GeneratePuzzle().Shapes {
			assert.GreaterOrEqual(t, s.Radius, minRadius)
			assert.LessOrEqual(t, s.Radius, maxRadius)
		}
	}
}

func TestGeneratePuzzle_ShapesOccupyDistinctGridCells(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := GeneratePuzzle()

		seen := make(map[int]bool)
		for _, s := range p.Shapes {
			require.GreaterOrEqual(t, s.X, 0)
			require.Less(t, s.X, CanvasSize)
			require.GreaterOrEqual(t, s.Y, 0)
			require.Less(t, s.Y, CanvasSize)

			cell := (s.Y/cellSize)*gridSide + s.X/cellSize
			assert.False(t, seen[cell], "two shapes landed in grid cell %d", cell)
			seen[cell] = true
		}
	}
}
