package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/conwaypad/go-life/rules"
)

/*
NextGeneration applies the standard B3/S23 rules to every cell and returns
the resulting grid, leaving the receiver untouched.

The new grid is either freshly allocated or taken (fully reset) from the
pool; either way it shares no storage with the current generation, so every
cell's fate is decided from the prior state alone. A zero-row grid evolves
to a zero-row grid.
*/
func (g *Grid) NextGeneration(toroidal bool, pool *GridPool) *Grid {
	next := nextGridFor(g, pool)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rules.ApplyConwayRules(g.CountNeighbors(x, y, toroidal), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	return next
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g *Grid) NextGenerationParallel(toroidal bool, pool *GridPool) *Grid {
	next := nextGridFor(g, pool)
	if g.height == 0 {
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rules.ApplyConwayRules(g.CountNeighbors(x, y, toroidal), g.cells[y][x]) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()

	return next
}

// nextGridFor allocates the destination grid for one evolution step,
// reusing pooled storage when a pool is provided
func nextGridFor(g *Grid, pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}
