package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/scenario"
)

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(`
name: tiny
size: {w: 3, h: 2}
rows:
  - "R.B"
cells:
  - {x: 1, y: 0, c: yellow}
placements:
  - {shape: o, color: g, x: 0, y: 0, masked: true}
`))
	require.NoError(t, err)

	assert.Equal(t, "tiny", s.Name)
	assert.Equal(t, scenario.Size{W: 3, H: 2}, s.Size)
	assert.Equal(t, scenario.DefaultMaxTicks, s.MaxTicks)
	require.Len(t, s.Placements, 1)
	assert.True(t, s.Placements[0].Masked)
	assert.Nil(t, s.Expect)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"malformed", "size: [1"},
		{"zero size", "size: {w: 0, h: 5}"},
		{"missing size", "name: nothing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	s := &scenario.Scenario{
		Name:  "build",
		Size:  scenario.Size{W: 3, H: 3},
		Rows:  []string{"R.B", "GGG"},
		Cells: []scenario.Cell{{X: 0, Y: 0, C: "y"}},
	}

	f, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, field.Locked(field.Yellow), f.At(0, 0))
	assert.Equal(t, field.Locked(field.Red), f.At(0, 1))
	assert.False(t, f.At(1, 1).Filled)
	assert.Equal(t, field.Locked(field.Blue), f.At(2, 1))
	assert.Equal(t, []int{2}, f.FullRows())
	assert.Zero(t, f.ActiveCount())
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name string
		s    scenario.Scenario
	}{
		{"row too wide", scenario.Scenario{Size: scenario.Size{W: 2, H: 2}, Rows: []string{"RRR"}}},
		{"too many rows", scenario.Scenario{Size: scenario.Size{W: 1, H: 1}, Rows: []string{"R", "R"}}},
		{"bad row letter", scenario.Scenario{Size: scenario.Size{W: 2, H: 1}, Rows: []string{"RX"}}},
		{"bad cell color", scenario.Scenario{Size: scenario.Size{W: 2, H: 2}, Cells: []scenario.Cell{{C: "pink"}}}},
		{"cell out of bounds", scenario.Scenario{Size: scenario.Size{W: 2, H: 2}, Cells: []scenario.Cell{{X: 5, C: "r"}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.s.Build()
			assert.Error(t, err)
		})
	}
}

func TestPlacementPiece(t *testing.T) {
	p := scenario.Placement{Shape: "I", Color: "blue", Turns: 1, Direction: "ccw"}
	g, err := p.Piece()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 1, g.Height())

	_, err = scenario.Placement{Shape: "Q", Color: "red"}.Piece()
	assert.Error(t, err)
	_, err = scenario.Placement{Shape: "I", Color: "mauve"}.Piece()
	assert.Error(t, err)
	_, err = scenario.Placement{Shape: "I", Color: "red", Direction: "up"}.Piece()
	assert.Error(t, err)
}

func TestRunFixtures(t *testing.T) {
	testCases := []struct {
		file    string
		ticks   int
		cleared int
	}{
		{"bar-drop.yaml", 16, 0},
		{"four-rows.yaml", 1, 4},
		{"gap-fill.yaml", 19, 2},
		{"stack.yml", 11, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			s, err := scenario.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)

			tr, err := scenario.Run(s)
			require.NoError(t, err)
			assert.Len(t, tr.Ticks, tc.ticks)
			assert.Equal(t, tc.cleared, tr.Cleared())
			assert.NoError(t, scenario.Check(s, tr))
			assert.Equal(t, field.PhaseSettled, tr.Final.Phase())
		})
	}
}

func TestRunStack(t *testing.T) {
	s, err := scenario.Load("testdata/stack.yml")
	require.NoError(t, err)

	tr, err := scenario.Run(s)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 0}, {0, 0}, {1, 0}}, tr.Offsets)
	assert.Equal(t, 9, tr.Final.Count())
	assert.Equal(t, 4, tr.Final.ContentHeight())

	// the horizontal bar completes row 2 and is cleared straight away
	var clear *scenario.Tick
	for i := range tr.Ticks {
		if tr.Ticks[i].Result.Kind == field.StepClear {
			clear = &tr.Ticks[i]
		}
	}
	require.NotNil(t, clear)
	assert.Equal(t, 1, clear.Placement)
	assert.Equal(t, []int{2}, clear.Result.Cleared)
}

func TestRunBarHeights(t *testing.T) {
	s, err := scenario.Load("testdata/bar-drop.yaml")
	require.NoError(t, err)

	tr, err := scenario.Run(s)
	require.NoError(t, err)

	for i, tk := range tr.Ticks {
		assert.Equal(t, field.StepFall, tk.Result.Kind)
		assert.Equal(t, 0, tk.Placement)
		// the bar starts with its top on row 0 and sinks one row per tick
		assert.Equal(t, 20-(i+1), tk.Height)
	}
}

func TestRunGapFillClearsBothRows(t *testing.T) {
	s, err := scenario.Load("testdata/gap-fill.yaml")
	require.NoError(t, err)

	tr, err := scenario.Run(s)
	require.NoError(t, err)
	require.Len(t, tr.Ticks, 19)

	for i, tk := range tr.Ticks[:15] {
		assert.Equal(t, field.StepFall, tk.Result.Kind, "tick %d", i)
	}
	assert.Equal(t, field.StepLock, tr.Ticks[15].Result.Kind)
	assert.Equal(t, field.StepClear, tr.Ticks[16].Result.Kind)
	assert.Equal(t, []int{18, 19}, tr.Ticks[16].Result.Cleared)
	assert.Equal(t, field.StepCompact, tr.Ticks[17].Result.Kind)
	assert.Equal(t, field.StepCompact, tr.Ticks[18].Result.Kind)
}

func TestRunSettlesStartingField(t *testing.T) {
	s, err := scenario.Parse([]byte(`
size: {w: 10, h: 20}
rows:
  - "RRRR.RRRRR"
  - "GGGGGGGGGG"
placements:
  - {shape: I, color: yellow, x: 4, y: 0}
`))
	require.NoError(t, err)

	tr, err := scenario.Run(s)
	require.NoError(t, err)
	require.Len(t, tr.Ticks, 20)

	// the full bottom row clears and the gapped row sinks before the bar spawns
	assert.Equal(t, -1, tr.Ticks[0].Placement)
	assert.Equal(t, []int{19}, tr.Ticks[0].Result.Cleared)
	assert.Equal(t, -1, tr.Ticks[1].Placement)
	assert.Equal(t, field.StepCompact, tr.Ticks[1].Result.Kind)
	assert.Equal(t, 0, tr.Ticks[2].Placement)
	assert.Equal(t, 2, tr.Cleared())
	assert.Equal(t, 3, tr.Final.Count())
}

func TestRunUnsettled(t *testing.T) {
	s, err := scenario.Parse([]byte(`
size: {w: 4, h: 20}
placements:
  - {shape: O, color: red, x: 0, y: 0}
max_ticks: 5
`))
	require.NoError(t, err)

	_, err = scenario.Run(s)
	assert.ErrorIs(t, err, field.ErrUnsettled)
}

func TestCheckFailure(t *testing.T) {
	s, err := scenario.Load("testdata/bar-drop.yaml")
	require.NoError(t, err)
	tr, err := scenario.Run(s)
	require.NoError(t, err)

	wrong := 3
	s.Expect.ContentHeight = &wrong
	assert.ErrorIs(t, scenario.Check(s, tr), scenario.ErrExpectation)
}

func TestLoadDir(t *testing.T) {
	all, err := scenario.LoadDir("testdata")
	require.NoError(t, err)
	require.Len(t, all, 4)

	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"bar-drop", "four-rows", "gap-fill", "stack"}, names)
}

func TestLoadNameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: {w: 2, h: 2}\n"), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", s.Name)
	assert.Equal(t, path, s.FilePath)
}
