package main

const (
	SpatialCellSize = 100.0 // a player spans at most 2x2 cells
	SpatialCols     = 8     // ceil(800/100)
	SpatialRows     = 6     // ceil(600/100)
)

// SpatialGrid is a fixed-size grid over the arena for broad-phase
// collision queries. Cells hold indices into a caller-owned slice.
type SpatialGrid struct {
	cells [SpatialCols * SpatialRows][]int
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellRange returns the inclusive cell span covered by r, clamped to the grid
func cellRange(r Rect) (minCX, minCY, maxCX, maxCY int) {
	minCX = clampInt(int(r.X/SpatialCellSize), 0, SpatialCols-1)
	maxCX = clampInt(int((r.X+r.Width)/SpatialCellSize), 0, SpatialCols-1)
	minCY = clampInt(int(r.Y/SpatialCellSize), 0, SpatialRows-1)
	maxCY = clampInt(int((r.Y+r.Height)/SpatialCellSize), 0, SpatialRows-1)
	return
}

// InsertRect adds idx to every cell the rectangle touches
func (g *SpatialGrid) InsertRect(r Rect, idx int) {
	minCX, minCY, maxCX, maxCY := cellRange(r)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			c := cy*SpatialCols + cx
			g.cells[c] = append(g.cells[c], idx)
		}
	}
}

// QueryBuf appends the indices stored in cells overlapping r to buf.
// An index may appear more than once.
func (g *SpatialGrid) QueryBuf(r Rect, buf []int) []int {
	minCX, minCY, maxCX, maxCY := cellRange(r)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			buf = append(buf, g.cells[cy*SpatialCols+cx]...)
		}
	}
	return buf
}
