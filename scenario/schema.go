package scenario

import "github.com/hashicorp/hcl/v2"

// hclMapFile is the first decode pass: the map block and everything else.
type hclMapFile struct {
	Map  *hclMap  `hcl:"map,block"`
	Body hcl.Body `hcl:",remain"`
}

type hclMap struct {
	Connectivity int      `hcl:"connectivity,optional"`
	Rows         []string `hcl:"rows"`
}

// hclScenarioBody is the second decode pass, evaluated with map.width and
// map.height in scope.
type hclScenarioBody struct {
	Robot  *hclRobot   `hcl:"robot,block"`
	Start  *hclPoint   `hcl:"start,block"`
	Goal   *hclPoint   `hcl:"goal,block"`
	Events []*hclEvent `hcl:"event,block"`
}

type hclRobot struct {
	SensorRadius  *int   `hcl:"sensor_radius,optional"`
	MaxExpansions int    `hcl:"max_expansions,optional"`
	MaxSteps      int    `hcl:"max_steps,optional"`
	Heuristic     string `hcl:"heuristic,optional"`
}

type hclPoint struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
}

type hclEvent struct {
	Step  int     `hcl:"step"`
	Block [][]int `hcl:"block,optional"`
	Clear [][]int `hcl:"clear,optional"`
}
