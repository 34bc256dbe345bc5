package model

import (
	"errors"
	"testing"

	"github.com/conwaypad/go-life/utils"
)

func TestParseLines(t *testing.T) {
	g, err := ParseLines([]string{"*_", "_*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.GetWidth() != 2 || g.GetHeight() != 2 {
		t.Fatalf("got %dx%d, want 2x2", g.GetWidth(), g.GetHeight())
	}
	if !g.Get(0, 0) || g.Get(1, 0) || g.Get(0, 1) || !g.Get(1, 1) {
		t.Fatal("parsed cells do not match input markers")
	}
}

func TestParseLinesTreatsUnknownCharactersAsDead(t *testing.T) {
	g, err := ParseLines([]string{"a*", ".x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.CountLivingCells() != 1 || !g.Get(1, 0) {
		t.Fatal("only the live marker should produce a live cell")
	}
}

func TestParseLinesRejectsUnrecognizedFormat(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{},
		{"hello", "world"},
	} {
		_, err := ParseLines(lines)
		if !errors.Is(err, utils.ErrFormat) {
			t.Fatalf("ParseLines(%q) error = %v, want ErrFormat", lines, err)
		}
	}
}

func TestParseLinesRejectsRaggedRows(t *testing.T) {
	_, err := ParseLines([]string{"*__", "*_"})
	if !errors.Is(err, utils.ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	input := []string{"*_", "_*"}

	g, err := ParseLines(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := g.MarkerLines()
	if len(lines) != len(input) {
		t.Fatalf("got %d lines, want %d", len(lines), len(input))
	}
	for i := range input {
		if lines[i] != input[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], input[i])
		}
	}
}

func TestLoadBoardMissingFile(t *testing.T) {
	if _, err := LoadBoard("no-such-board.txt"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
