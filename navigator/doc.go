// Package navigator drives a robot across a partially known grid with
// D*-Lite.
//
// The navigator keeps two grids: the world, which is the ground truth,
// and the belief the planner searches. Hidden obstacles are free in the
// belief until the robot comes within sensor range. Each Step applies any
// timed events to the world, senses, forwards the resulting edge cost
// changes to the planner, repairs the plan and moves one cell.
//
//	nav, err := navigator.New(world, start, goal,
//		navigator.WithHidden(hidden...),
//		navigator.WithSensorRadius(2))
//	trace, err := nav.Run()
package navigator
