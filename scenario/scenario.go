package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/dstarlite"
	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/navigator"
)

// ErrInvalidScenario is wrapped by every Parse and Load failure that is
// not an I/O error.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is a decoded scenario file.
type Scenario struct {
	Name          string
	Values        [][]float64 // ground truth, [y][x]; negative is an obstacle
	Conn          gridgraph.Connectivity
	Hidden        []gridgraph.Cell
	Start, Goal   gridgraph.Cell
	SensorRadius  int
	MaxExpansions int
	MaxSteps      int
	Heuristic     string
	Events        []navigator.Event
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes an HCL scenario. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, diags)
	}

	var mf hclMapFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, diags)
	}
	if mf.Map == nil {
		return nil, invalidf(filename, "missing map block")
	}

	s := &Scenario{Name: filename, SensorRadius: 1}
	switch mf.Map.Connectivity {
	case 0, 4:
		s.Conn = gridgraph.Conn4
	case 8:
		s.Conn = gridgraph.Conn8
	default:
		return nil, invalidf(filename, "connectivity must be 4 or 8, got %d", mf.Map.Connectivity)
	}
	start, goal, err := s.parseRows(mf.Map.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, err)
	}

	var body hclScenarioBody
	if diags := gohcl.DecodeBody(mf.Body, evalContext(s), &body); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, diags)
	}
	if err := s.applyBody(&body, start, goal); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, filename, err)
	}

	klog.V(2).Infof("scenario: loaded %s: %dx%d conn %v, %d hidden, %d events",
		filename, s.width(), s.height(), s.Conn, len(s.Hidden), len(s.Events))
	return s, nil
}

func invalidf(filename, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScenario, filename, fmt.Sprintf(format, args...))
}

// evalContext exposes map.width and map.height.
func evalContext(s *Scenario) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"map": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(s.width())),
				"height": cty.NumberIntVal(int64(s.height())),
			}),
		},
	}
}

func (s *Scenario) width() int {
	if len(s.Values) == 0 {
		return 0
	}
	return len(s.Values[0])
}

func (s *Scenario) height() int { return len(s.Values) }

// parseRows fills Values and Hidden from the map legend and returns the
// S and G markers, nil when absent.
func (s *Scenario) parseRows(rows []string) (start, goal *gridgraph.Cell, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, gridgraph.ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	s.Values = make([][]float64, len(rows))
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, nil, fmt.Errorf("row %d: %w", y, gridgraph.ErrNonRectangular)
		}
		s.Values[y] = make([]float64, width)
		for x, ch := range cells {
			c := gridgraph.Cell{X: x, Y: y}
			switch {
			case ch == '.':
			case ch == '#':
				s.Values[y][x] = gridgraph.Obstacle
			case ch == 'x':
				s.Values[y][x] = gridgraph.Obstacle
				s.Hidden = append(s.Hidden, c)
			case ch >= '1' && ch <= '9':
				s.Values[y][x] = float64(ch - '0')
			case ch == 'S':
				if start != nil {
					return nil, nil, fmt.Errorf("second start marker at %v", c)
				}
				start = &c
			case ch == 'G':
				if goal != nil {
					return nil, nil, fmt.Errorf("second goal marker at %v", c)
				}
				goal = &c
			default:
				return nil, nil, fmt.Errorf("unknown map symbol %q at %v", ch, c)
			}
		}
	}
	return start, goal, nil
}

// applyBody validates the second pass and copies it into s.
func (s *Scenario) applyBody(b *hclScenarioBody, start, goal *gridgraph.Cell) error {
	if r := b.Robot; r != nil {
		if r.SensorRadius != nil {
			s.SensorRadius = *r.SensorRadius
		}
		s.MaxExpansions, s.MaxSteps, s.Heuristic = r.MaxExpansions, r.MaxSteps, r.Heuristic
	}
	if s.SensorRadius < 1 {
		return fmt.Errorf("sensor_radius must be ≥ 1, got %d", s.SensorRadius)
	}
	if s.MaxExpansions < 0 || s.MaxSteps < 0 {
		return errors.New("max_expansions and max_steps must be ≥ 0")
	}
	if _, err := gridgraph.HeuristicByName(s.Heuristic, s.Conn); err != nil {
		return err
	}

	if b.Start != nil {
		start = &gridgraph.Cell{X: b.Start.X, Y: b.Start.Y}
	}
	if b.Goal != nil {
		goal = &gridgraph.Cell{X: b.Goal.X, Y: b.Goal.Y}
	}
	if start == nil || goal == nil {
		return errors.New("start and goal must be given by marker or block")
	}
	for _, c := range []gridgraph.Cell{*start, *goal} {
		if !s.inBounds(c) {
			return fmt.Errorf("endpoint %v: %w", c, gridgraph.ErrOutOfBounds)
		}
		if s.Values[c.Y][c.X] < 0 {
			return fmt.Errorf("endpoint %v: %w", c, navigator.ErrBlockedEndpoint)
		}
	}
	s.Start, s.Goal = *start, *goal

	for i, ev := range b.Events {
		if ev.Step < 0 {
			return fmt.Errorf("event %d: step must be ≥ 0", i)
		}
		blk, err := s.cells(ev.Block)
		if err != nil {
			return fmt.Errorf("event %d: block: %w", i, err)
		}
		clr, err := s.cells(ev.Clear)
		if err != nil {
			return fmt.Errorf("event %d: clear: %w", i, err)
		}
		s.Events = append(s.Events, navigator.Event{Step: ev.Step, Block: blk, Clear: clr})
	}
	return nil
}

func (s *Scenario) cells(pairs [][]int) ([]gridgraph.Cell, error) {
	var out []gridgraph.Cell
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("cell %v: want [x, y]", p)
		}
		c := gridgraph.Cell{X: p[0], Y: p[1]}
		if !s.inBounds(c) {
			return nil, fmt.Errorf("cell %v: %w", c, gridgraph.ErrOutOfBounds)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Scenario) inBounds(c gridgraph.Cell) bool {
	return c.X >= 0 && c.X < s.width() && c.Y >= 0 && c.Y < s.height()
}

// World builds the ground-truth grid.
func (s *Scenario) World() (*gridgraph.GridGraph, error) {
	return gridgraph.NewGridGraph(s.Values, gridgraph.GridOptions{Conn: s.Conn})
}

// Options returns the navigator options the scenario describes. An
// unknown heuristic name falls back to the grid default.
func (s *Scenario) Options() []navigator.Option {
	opts := []navigator.Option{
		navigator.WithHidden(s.Hidden...),
		navigator.WithEvents(s.Events...),
	}
	if s.SensorRadius > 0 {
		opts = append(opts, navigator.WithSensorRadius(s.SensorRadius))
	}
	if s.MaxSteps > 0 {
		opts = append(opts, navigator.WithMaxSteps(s.MaxSteps))
	}
	if h, err := gridgraph.HeuristicByName(s.Heuristic, s.Conn); err == nil {
		opts = append(opts, navigator.WithHeuristic(h))
	}
	if s.MaxExpansions > 0 {
		opts = append(opts, navigator.WithPlannerOptions(dstarlite.WithMaxExpansions(s.MaxExpansions)))
	}
	return opts
}

// Navigator builds the world and a navigator from Start to Goal. extra
// options apply after the scenario's own.
func (s *Scenario) Navigator(extra ...navigator.Option) (*navigator.Navigator, error) {
	world, err := s.World()
	if err != nil {
		return nil, err
	}
	return navigator.New(world, s.Start, s.Goal, append(s.Options(), extra...)...)
}
