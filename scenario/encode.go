package scenario

import (
	"math"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/replan/gridgraph"
)

// MapRows renders Values in the map legend. Cell values are rounded to the
// nearest digit; S and G mark the start and goal when those cells hold 0.
func (s *Scenario) MapRows() []string {
	hidden := make(map[gridgraph.Cell]bool, len(s.Hidden))
	for _, c := range s.Hidden {
		hidden[c] = true
	}
	rows := make([]string, len(s.Values))
	for y, vals := range s.Values {
		row := make([]rune, len(vals))
		for x, v := range vals {
			c := gridgraph.Cell{X: x, Y: y}
			switch d := math.Round(v); {
			case v < 0 && hidden[c]:
				row[x] = 'x'
			case v < 0:
				row[x] = '#'
			case d >= 1:
				row[x] = rune('0' + int(math.Min(d, 9)))
			case c == s.Start:
				row[x] = 'S'
			case c == s.Goal:
				row[x] = 'G'
			default:
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

// Encode writes s back as HCL. Start and goal are always written as
// blocks so that Parse(Encode()) reproduces them even on costly cells.
func (s *Scenario) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	m := root.AppendNewBlock("map", nil).Body()
	conn := int64(4)
	if s.Conn == gridgraph.Conn8 {
		conn = 8
	}
	m.SetAttributeValue("connectivity", cty.NumberIntVal(conn))
	rows := make([]cty.Value, 0, len(s.Values))
	for _, r := range s.MapRows() {
		rows = append(rows, cty.StringVal(r))
	}
	if len(rows) == 0 {
		m.SetAttributeValue("rows", cty.ListValEmpty(cty.String))
	} else {
		m.SetAttributeValue("rows", cty.ListVal(rows))
	}
	root.AppendNewline()

	r := root.AppendNewBlock("robot", nil).Body()
	r.SetAttributeValue("sensor_radius", cty.NumberIntVal(int64(s.SensorRadius)))
	if s.MaxExpansions > 0 {
		r.SetAttributeValue("max_expansions", cty.NumberIntVal(int64(s.MaxExpansions)))
	}
	if s.MaxSteps > 0 {
		r.SetAttributeValue("max_steps", cty.NumberIntVal(int64(s.MaxSteps)))
	}
	if s.Heuristic != "" {
		r.SetAttributeValue("heuristic", cty.StringVal(s.Heuristic))
	}

	for _, p := range []struct {
		name string
		c    gridgraph.Cell
	}{{"start", s.Start}, {"goal", s.Goal}} {
		root.AppendNewline()
		b := root.AppendNewBlock(p.name, nil).Body()
		b.SetAttributeValue("x", cty.NumberIntVal(int64(p.c.X)))
		b.SetAttributeValue("y", cty.NumberIntVal(int64(p.c.Y)))
	}

	for _, ev := range s.Events {
		root.AppendNewline()
		b := root.AppendNewBlock("event", nil).Body()
		b.SetAttributeValue("step", cty.NumberIntVal(int64(ev.Step)))
		if len(ev.Block) > 0 {
			b.SetAttributeValue("block", cellList(ev.Block))
		}
		if len(ev.Clear) > 0 {
			b.SetAttributeValue("clear", cellList(ev.Clear))
		}
	}

	return f.Bytes()
}

func cellList(cells []gridgraph.Cell) cty.Value {
	vals := make([]cty.Value, len(cells))
	for i, c := range cells {
		vals[i] = cty.ListVal([]cty.Value{
			cty.NumberIntVal(int64(c.X)),
			cty.NumberIntVal(int64(c.Y)),
		})
	}
	return cty.ListVal(vals)
}
