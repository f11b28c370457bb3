package grid_test

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/grid"
)

func TestRotateClockwise(t *testing.T) {
	g := fromRows(
		"ab",
		"cd",
		"ef",
	)

	got := g.Rotate(grid.Clockwise, 1)
	want := fromRows(
		"eca",
		"fdb",
	)
	if !got.Equal(want) {
		t.Errorf("clockwise:\n%v\nwant:\n%v", got, want)
	}
}

func TestRotateCounterclockwise(t *testing.T) {
	g := fromRows(
		"ab",
		"cd",
		"ef",
	)

	got := g.Rotate(grid.Counterclockwise, 1)
	want := fromRows(
		"bdf",
		"ace",
	)
	if !got.Equal(want) {
		t.Errorf("counterclockwise:\n%v\nwant:\n%v", got, want)
	}
}

func TestRotateRoundTrips(t *testing.T) {
	shapes := []*grid.Grid[rune]{
		fromRows("a", "b", "c", "d"),
		fromRows("ab.", ".cd"),
		fromRows("a.", "a.", "aa"),
		fromRows(".a.", "aaa"),
		grid.New[rune](0, 0),
	}

	for _, g := range shapes {
		if got := g.Rotate(grid.Clockwise, 4); !got.Equal(g) {
			t.Errorf("four clockwise turns changed grid:\n%v", got)
		}
		if got := g.Rotate(grid.Clockwise, 1).Rotate(grid.Counterclockwise, 1); !got.Equal(g) {
			t.Errorf("cw then ccw changed grid:\n%v", got)
		}
		if got := g.Rotate(grid.Clockwise, 3); !got.Equal(g.Rotate(grid.Counterclockwise, 1)) {
			t.Errorf("three clockwise turns should equal one counterclockwise")
		}
		if got := g.Rotate(grid.Clockwise, -1); !got.Equal(g.Rotate(grid.Counterclockwise, 1)) {
			t.Errorf("negative turns should rotate the other way")
		}
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	g := grid.New[int](1, 4)

	r := g.Rotate(grid.Clockwise, 1)
	if r.Width() != 4 || r.Height() != 1 {
		t.Errorf("expected 4x1 after one turn, got %dx%d", r.Width(), r.Height())
	}

	r = g.Rotate(grid.Clockwise, 2)
	if r.Width() != 1 || r.Height() != 4 {
		t.Errorf("expected 1x4 after two turns, got %dx%d", r.Width(), r.Height())
	}
}

func TestRotateReturnsCopy(t *testing.T) {
	g := fromRows("ab")
	same := g.Rotate(grid.Clockwise, 0)
	same.Put(0, 0, grid.Some('z'))
	if g.At(0, 0).Value != 'a' {
		t.Error("zero-turn rotation should not alias the original")
	}
}

func TestParseRotation(t *testing.T) {
	testCases := []struct {
		input    string
		expected grid.Rotation
		ok       bool
	}{
		{"cw", grid.Clockwise, true},
		{"clockwise", grid.Clockwise, true},
		{"ccw", grid.Counterclockwise, true},
		{"counterclockwise", grid.Counterclockwise, true},
		{"sideways", grid.Clockwise, false},
	}

	for _, tc := range testCases {
		r, ok := grid.ParseRotation(tc.input)
		if ok != tc.ok || r != tc.expected {
			t.Errorf("ParseRotation(%q) = %v, %v; want %v, %v", tc.input, r, ok, tc.expected, tc.ok)
		}
	}
}
