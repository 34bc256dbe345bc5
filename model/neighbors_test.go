package model

import "testing"

func TestCountNeighborsStaysInRange(t *testing.T) {
	g := NewGrid(4, 4)
	// Fill everything so counts hit their maximum
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, true)
		}
	}

	for _, toroidal := range []bool{false, true} {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				n := g.CountNeighbors(x, y, toroidal)
				if n < 0 || n > 8 {
					t.Fatalf("neighbors(%d,%d) toroidal=%v = %d, want within [0,8]", x, y, toroidal, n)
				}
			}
		}
	}

	if n := g.CountNeighbors(1, 1, false); n != 8 {
		t.Errorf("interior cell of a full grid has %d neighbors, want 8", n)
	}
	if n := g.CountNeighbors(0, 0, false); n != 3 {
		t.Errorf("bounded corner of a full grid has %d neighbors, want 3", n)
	}
	if n := g.CountNeighbors(0, 0, true); n != 8 {
		t.Errorf("toroidal corner of a full grid has %d neighbors, want 8", n)
	}
}

func TestCornerWrapDivergence(t *testing.T) {
	// A live cell at the opposite corner is only adjacent through the wrap
	g := NewGrid(3, 3)
	g.Set(0, 0, true)
	g.Set(2, 2, true)

	bounded := g.CountNeighbors(0, 0, false)
	toroidal := g.CountNeighbors(0, 0, true)

	if bounded != 0 {
		t.Errorf("bounded corner count = %d, want 0", bounded)
	}
	if toroidal != 1 {
		t.Errorf("toroidal corner count = %d, want 1", toroidal)
	}
	if bounded >= toroidal {
		t.Errorf("bounded count %d should be below toroidal count %d", bounded, toroidal)
	}
}

func TestCountNeighborsDoesNotCountCenter(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)

	for _, toroidal := range []bool{false, true} {
		if n := g.CountNeighbors(1, 1, toroidal); n != 0 {
			t.Errorf("lone live cell counts itself (toroidal=%v): got %d, want 0", toroidal, n)
		}
	}
}
