package scenario_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/replan/astar"
	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/navigator"
	"github.com/katalvlaran/replan/scenario"
)

var warehouseRows = []string{
	"S...x.....",
	"....x.....",
	"....x.##..",
	"....x..#..",
	"..2....#..",
	"..2....#.G",
}

func TestLoadWarehouse(t *testing.T) {
	s, err := scenario.Load("testdata/warehouse.hcl")
	require.NoError(t, err)

	assert.Equal(t, "testdata/warehouse.hcl", s.Name)
	assert.Equal(t, gridgraph.Conn4, s.Conn)
	assert.Len(t, s.Values, 6)
	assert.Len(t, s.Values[0], 10)
	assert.Equal(t, gridgraph.Cell{X: 0, Y: 0}, s.Start)
	assert.Equal(t, gridgraph.Cell{X: 9, Y: 5}, s.Goal)
	assert.Equal(t, 2, s.SensorRadius)
	assert.Equal(t, "manhattan", s.Heuristic)
	assert.Equal(t, 2.0, s.Values[4][2])
	assert.Equal(t, gridgraph.Obstacle, s.Values[2][6])

	wantHidden := []gridgraph.Cell{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}
	if diff := cmp.Diff(wantHidden, s.Hidden); diff != "" {
		t.Errorf("hidden cells mismatch (-want +got):\n%s", diff)
	}
	wantEvents := []navigator.Event{
		{Step: 3, Block: []gridgraph.Cell{{X: 8, Y: 1}}},
		{Step: 6, Clear: []gridgraph.Cell{{X: 7, Y: 3}}},
	}
	if diff := cmp.Diff(wantEvents, s.Events, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestWarehouseRun(t *testing.T) {
	s, err := scenario.Load("testdata/warehouse.hcl")
	require.NoError(t, err)

	nav, err := s.Navigator()
	require.NoError(t, err)
	tr, err := nav.Run()
	require.NoError(t, err)
	require.Equal(t, s.Goal, tr.Path[len(tr.Path)-1])

	final := nav.World()
	assert.True(t, final.Blocked(gridgraph.Cell{X: 8, Y: 1}))
	assert.False(t, final.Blocked(gridgraph.Cell{X: 7, Y: 3}))
	res, err := astar.Search[gridgraph.Cell](final, gridgraph.Manhattan, s.Start, s.Goal)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tr.Cost, res.Cost)
}

func TestWarehouseRunWithTightBudget(t *testing.T) {
	s, err := scenario.Load("testdata/warehouse.hcl")
	require.NoError(t, err)
	s.MaxExpansions, s.MaxSteps = 4, 2000

	nav, err := s.Navigator()
	require.NoError(t, err)
	tr, err := nav.Run()
	require.NoError(t, err)
	assert.Equal(t, s.Goal, nav.Position())
	assert.Positive(t, tr.Paused)
	assert.Equal(t, len(tr.Path)-1, nav.Steps())
}

func TestOpen8Defaults(t *testing.T) {
	s, err := scenario.Load("testdata/open8.hcl")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, s.Conn)
	assert.Equal(t, 1, s.SensorRadius)
	assert.Empty(t, s.Heuristic)
	assert.Equal(t, gridgraph.Cell{X: 4, Y: 4}, s.Goal)

	nav, err := s.Navigator()
	require.NoError(t, err)
	tr, err := nav.Run()
	require.NoError(t, err)
	assert.Equal(t, s.Goal, nav.Position())
	assert.GreaterOrEqual(t, tr.Cost, 4*1.4142135623730951)
}

func TestMapVariables(t *testing.T) {
	src := `
map {
  rows = [
    "S....",
    ".....",
    ".....",
  ]
}
goal {
  x = map.width - 2
  y = map.height - 3
}
event {
  step  = 0
  block = [[map.width - 1, map.height - 1]]
}
`
	s, err := scenario.Parse([]byte(src), "vars.hcl")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 0}, s.Goal)
	require.Len(t, s.Events, 1)
	assert.Equal(t, []gridgraph.Cell{{X: 4, Y: 2}}, s.Events[0].Block)
}

func TestMapRowsRoundTrip(t *testing.T) {
	s, err := scenario.Load("testdata/warehouse.hcl")
	require.NoError(t, err)
	if diff := cmp.Diff(warehouseRows, s.MapRows()); diff != "" {
		t.Errorf("MapRows mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, path := range []string{"testdata/warehouse.hcl", "testdata/open8.hcl"} {
		t.Run(path, func(t *testing.T) {
			s, err := scenario.Load(path)
			require.NoError(t, err)
			again, err := scenario.Parse(s.Encode(), "encoded.hcl")
			require.NoError(t, err, "encoded:\n%s", s.Encode())
			opts := cmp.Options{
				cmpopts.IgnoreFields(scenario.Scenario{}, "Name"),
				cmpopts.EquateEmpty(),
			}
			if diff := cmp.Diff(s, again, opts); diff != "" {
				t.Errorf("round trip mismatch (-loaded +encoded):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error // in addition to ErrInvalidScenario
	}{
		{"Syntax", `map {`, nil},
		{"MissingMap", `robot { sensor_radius = 1 }`, nil},
		{"Connectivity", `map {
  connectivity = 6
  rows = ["SG"]
}`, nil},
		{"UnknownSymbol", `map { rows = ["S?G"] }`, nil},
		{"Ragged", `map { rows = ["S..", "G."] }`, gridgraph.ErrNonRectangular},
		{"Empty", `map { rows = [] }`, gridgraph.ErrEmptyGrid},
		{"TwoStarts", `map { rows = ["SSG"] }`, nil},
		{"NoStart", `map { rows = ["..G"] }`, nil},
		{"GoalBlocked", `map { rows = ["S.#"] }
goal {
  x = 2
  y = 0
}`, navigator.ErrBlockedEndpoint},
		{"GoalOutOfBounds", `map { rows = ["S.."] }
goal {
  x = map.width
  y = 0
}`, gridgraph.ErrOutOfBounds},
		{"SensorRadius", `map { rows = ["S.G"] }
robot { sensor_radius = 0 }`, nil},
		{"Heuristic", `map { rows = ["S.G"] }
robot { heuristic = "chebyshev" }`, gridgraph.ErrUnknownHeuristic},
		{"UnknownAttribute", `map { rows = ["S.G"] }
robot { speed = 3 }`, nil},
		{"EventArity", `map { rows = ["S.G"] }
event {
  step  = 1
  block = [[1]]
}`, nil},
		{"EventOutOfBounds", `map { rows = ["S.G"] }
event {
  step  = 1
  clear = [[1, 1]]
}`, gridgraph.ErrOutOfBounds},
		{"EventStep", `map { rows = ["S.G"] }
event {
  step  = -1
  block = [[1, 0]]
}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load("testdata/nope.hcl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, scenario.ErrInvalidScenario))
}
