package model

import "fmt"

// Marker characters used for both pattern files and rendered frames
const (
	LiveMarker = '*'
	DeadMarker = '_'
)

// MarkerLines serializes the grid row-by-row as marker characters,
// the inverse of ParseLines for well-formed input
func (g *Grid) MarkerLines() []string {
	lines := make([]string, g.height)
	row := make([]rune, g.width)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				row[x] = LiveMarker
			} else {
				row[x] = DeadMarker
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// FrameLines produces one full display frame: the generation counter
// followed by the grid as marker rows
func FrameLines(generation int, g *Grid) []string {
	lines := make([]string, 0, g.height+1)
	lines = append(lines, fmt.Sprintf("Generation: %d", generation))
	return append(lines, g.MarkerLines()...)
}
