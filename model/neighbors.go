package model

/*
CountNeighbors counts the living cells in the Moore neighborhood of (x, y).

With toroidal topology, neighbor coordinates wrap modulo the grid
dimensions so the opposite edges are adjacent. Without it, off-grid
positions contribute nothing. The result is always in [0, 8].
*/
func (g *Grid) CountNeighbors(x, y int, toroidal bool) int {
	if toroidal {
		return g.countNeighborsToroidal(x, y)
	}
	return g.countNeighborsBounded(x, y)
}

// countNeighborsBounded counts living neighbors with optimized bounds checking
func (g *Grid) countNeighborsBounded(x, y int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	// Count neighbors in the bounded region
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// countNeighborsToroidal counts living neighbors with wrap-around addressing
func (g *Grid) countNeighborsToroidal(x, y int) int {
	count := 0

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			nx := (x + dx + g.width) % g.width
			ny := (y + dy + g.height) % g.height
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}
