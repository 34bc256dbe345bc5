package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/conwaypad/go-life/model"
	"github.com/conwaypad/go-life/utils"
)

/*
runGame owns the interactive loop: draw the current generation, wait for a
key press (or the frame ticker in auto-play), evolve, repeat.

The (generation, grid) pair is local loop state; each step hands the old
grid back to the pool and adopts the evolver's output wholesale. The loop
returns on q, Escape or Ctrl-C.
*/
func runGame(screen tcell.Screen, config utils.Config, grid *model.Grid) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	stats := utils.NewStats()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	generation := 0
	for {
		drawFrame(screen, generation, grid, stats, config)

		if !awaitStep(screen, events, config) {
			return
		}

		stepStart := time.Now()
		next := nextGeneration(grid, config, pool)
		model.GridToPool(grid, pool)
		grid = next
		generation++

		stats.Update(generation, grid.CountLivingCells(), time.Since(stepStart))
	}
}

// awaitStep blocks until the next generation is due, reporting false when
// a quit key arrives instead
func awaitStep(screen tcell.Screen, events <-chan tcell.Event, config utils.Config) bool {
	var frameTimer <-chan time.Time
	if config.AutoPlay {
		frameTimer = time.After(config.FrameRate.Std())
	}

	for {
		select {
		case <-frameTimer:
			return true
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return false
				}
				if !config.AutoPlay {
					// Any other key advances one generation
					return true
				}
			}
		}
	}
}

// isQuitKey reports whether the key ends the run
func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape ||
		ev.Key() == tcell.KeyCtrlC ||
		ev.Rune() == 'q' || ev.Rune() == 'Q'
}

// nextGeneration picks the evolver variant selected by the configuration
func nextGeneration(grid *model.Grid, config utils.Config, pool *model.GridPool) *model.Grid {
	if config.UseParallel {
		return grid.NextGenerationParallel(config.Torus, pool)
	}
	return grid.NextGeneration(config.Torus, pool)
}
