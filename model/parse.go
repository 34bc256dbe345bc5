package model

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/conwaypad/go-life/utils"
)

/*
ParseLines converts marker text into a grid: one line per row, one
character per cell, alive iff the character is the live marker. Any other
character, the dead marker included, parses as a dead cell.

The input must mention at least one live or dead marker somewhere,
and every row must match the length of the first; otherwise the data is
not in a recognized format and an ErrFormat is returned.
*/
func ParseLines(lines []string) (*Grid, error) {
	if !containsMarkers(lines) {
		return nil, errors.Wrap(utils.ErrFormat, "[ParseLines] data not in a recognized format")
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, errors.Wrapf(utils.ErrFormat,
				"[ParseLines] row %d has %d cells, want %d", i, len(rows[i]), len(rows[0]))
		}
	}

	grid := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			grid.Set(x, y, c == LiveMarker)
		}
	}

	return grid, nil
}

// LoadBoard reads a pattern file and parses it into the starting grid
func LoadBoard(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to read file: %+v", path)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	grid, err := ParseLines(lines)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to parse file: %+v", path)
	}

	return grid, nil
}

// containsMarkers reports whether any line mentions a live or dead marker
func containsMarkers(lines []string) bool {
	for _, line := range lines {
		if strings.ContainsRune(line, LiveMarker) || strings.ContainsRune(line, DeadMarker) {
			return true
		}
	}
	return false
}
