package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/conwaypad/go-life/model"
	"github.com/conwaypad/go-life/utils"
)

const usageText = `go-life - Conway's Game of Life in the terminal

Usage:
  go-life file:<path> [torus:<true|false>]

  file:<path>          board file, one row per line, '*' marks a live cell
  torus:<true|false>   wrap the board edges around (default false)

Press any key to advance a generation, q or Escape to quit.
Optional tuning lives in golife.yaml next to the binary.`

// printUsage shows the help message
func printUsage() {
	fmt.Println(usageText)
}

// drawFrame repaints the whole frame in place: generation counter, board,
// and the optional stats line
func drawFrame(screen tcell.Screen, generation int, grid *model.Grid, stats *utils.Stats, config utils.Config) {
	screen.Clear()

	lines := model.FrameLines(generation, grid)
	if config.ShowStats {
		lines = append(lines, statusLine(grid, stats))
	}

	style := tcell.StyleDefault
	for y, line := range lines {
		x := 0
		for _, c := range line {
			screen.SetContent(x, y, c, nil, style)
			x++
		}
	}

	screen.Show()
}

// statusLine summarizes the run below the board
func statusLine(grid *model.Grid, stats *utils.Stats) string {
	return fmt.Sprintf("Living: %d | %.1f gen/sec | Runtime: %.1fs",
		grid.CountLivingCells(), stats.GenerationsPerSecond, time.Since(stats.StartTime).Seconds())
}
