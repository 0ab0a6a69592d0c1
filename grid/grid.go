// Package grid defines the discrete arena and its mapping to display space.
//
// Display space is centered: the origin sits at the middle of the surface and
// values grow right (x) and up (y). Cell (0,0) is the bottom-left tile.
package grid

import "fmt"

// Arena is the fixed cell extent of the playfield
type Arena struct {
	Width  int
	Height int
}

// NewArena returns an arena, panicking on non-positive extents
func NewArena(width, height int) Arena {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("arena extents must be positive, got %dx%d", width, height))
	}
	return Arena{Width: width, Height: height}
}

// Contains reports whether the cell lies inside the arena
// Informational only, movement is never clamped
func (a Arena) Contains(x, y int) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height
}

// Surface is the pixel size of the display the arena is projected onto
type Surface struct {
	Width  float32
	Height float32
}

// TileSize returns the pixel span of one cell along an axis
func TileSize(surfacePixels float32, gridExtent int) float32 {
	return surfacePixels / float32(gridExtent)
}

// ToDisplay converts a cell index along one axis to the center of that tile in display space
func ToDisplay(cell int, surfacePixels float32, gridExtent int) float32 {
	tileSize := TileSize(surfacePixels, gridExtent)
	return float32(cell)/float32(gridExtent)*surfacePixels - surfacePixels/2 + tileSize/2
}

// CellToDisplay converts a cell to display space on both axes
func (a Arena) CellToDisplay(x, y int, s Surface) (float32, float32) {
	return ToDisplay(x, s.Width, a.Width), ToDisplay(y, s.Height, a.Height)
}
