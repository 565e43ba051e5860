// Package scenario loads navigation scenarios from HCL files.
//
// A scenario describes the ground-truth map, the robot and a schedule of
// world changes:
//
//	map {
//	  connectivity = 4
//	  rows = [
//	    "S...#",
//	    ".x..#",
//	    "..2.G",
//	  ]
//	}
//
//	robot {
//	  sensor_radius = 2
//	  heuristic     = "manhattan"
//	}
//
//	goal {
//	  x = map.width - 1
//	  y = map.height - 1
//	}
//
//	event {
//	  step  = 3
//	  block = [[2, 0], [2, 1]]
//	}
//
// Map legend: '.' free, '#' known obstacle, 'x' obstacle the robot only
// discovers by sensing, '1'-'9' extra traversal cost, 'S' and 'G' the
// start and goal. A start or goal block overrides the marker.
//
// The map block is decoded first. Every other block may then refer to
// map.width and map.height.
package scenario
