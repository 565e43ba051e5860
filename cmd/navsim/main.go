package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/astar"
	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/navigator"
	"github.com/katalvlaran/replan/scenario"
)

var (
	scenarioFile string
	heuristic    string
	showMap      bool
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(); err != nil {
		klog.Errorf("navsim: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run() error {
	if scenarioFile == "" {
		return errors.New("-scenario is required")
	}
	s, err := scenario.Load(scenarioFile)
	if err != nil {
		return err
	}
	if heuristic != "" {
		if _, err := gridgraph.HeuristicByName(heuristic, s.Conn); err != nil {
			return err
		}
		s.Heuristic = heuristic
	}

	nav, err := s.Navigator()
	if err != nil {
		return err
	}
	trace, runErr := nav.Run()
	if runErr != nil && !errors.Is(runErr, navigator.ErrNoPath) {
		return runErr
	}

	fmt.Printf("scenario:   %s (%dx%d, conn %v)\n", s.Name, nav.World().Width, nav.World().Height, s.Conn)
	fmt.Printf("path:       %s\n", formatPath(trace.Path))
	fmt.Printf("steps:      %d\n", len(trace.Path)-1)
	fmt.Printf("cost:       %.3f\n", trace.Cost)
	fmt.Printf("replans:    %d\n", trace.Replans)
	fmt.Printf("revealed:   %d\n", trace.Revealed)
	fmt.Printf("expansions: %d\n", trace.Expansions)
	fmt.Printf("paused:     %d\n", trace.Paused)

	world := nav.World()
	if runErr != nil {
		fmt.Printf("result:     %v\n", runErr)
		if _, cleared, err := world.BreachPath(nav.Position(), s.Goal); err == nil {
			fmt.Printf("breach:     %d obstacle(s) would have to be cleared\n", cleared)
		}
	} else {
		h, _ := gridgraph.HeuristicByName(s.Heuristic, s.Conn)
		res, err := astar.Search[gridgraph.Cell](world, h, s.Start, s.Goal)
		if err != nil {
			return err
		}
		fmt.Printf("omniscient: %.3f (A*, %d expansions)\n", res.Cost, res.Expanded)
		if res.Cost > 0 {
			fmt.Printf("ratio:      %.3f\n", trace.Cost/res.Cost)
		}
	}

	if showMap {
		fmt.Println()
		fmt.Println(render(world, trace.Path))
	}

	return nil
}

func formatPath(path []gridgraph.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// render draws the final world with the travelled cells marked '*'.
func render(world *gridgraph.GridGraph, path []gridgraph.Cell) string {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var b strings.Builder
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			v, _ := world.Value(c)
			switch {
			case onPath[c]:
				b.WriteByte('*')
			case v < 0:
				b.WriteByte('#')
			case v >= 1:
				b.WriteByte(byte('0' + min(int(v), 9)))
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	flag.StringVar(&scenarioFile, "scenario", "", "Path to an HCL scenario file.")
	flag.StringVar(&heuristic, "heuristic", "", "Heuristic: manhattan, octile, euclidean or zero (default: by connectivity).")
	flag.BoolVar(&showMap, "map", false, "Print the final map with the travelled path.")
}
