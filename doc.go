// Package aoc24 finds the cheapest routes for a reindeer through a walled
// maze, where the animal has a facing and turning is expensive.
//
// What is in here?
//
//	A small engine and the command around it:
//		• Grid model: immutable walls/floor, a start cell with a facing, a goal cell
//		• Oriented shortest path: Dijkstra over (cell, facing) states
//		• Tie-complete reconstruction: every cell on any cheapest route
//		• Maze generation: Wilson's algorithm with optional braiding
//		• Batch solving: bounded concurrent solves over shared grids
//
// Cost model:
//
//	A move forward in the current facing costs 1. A move in any other
//	direction, reversal included, costs 1001 and leaves the reindeer
//	facing the way it moved. Turning in place is never a separate step.
//
// Layout:
//
//	gridgraph/     Grid, Facing, Position, text parsing and rendering
//	dijkstra/      Solve: lowest cost plus the set of optimal cells
//	mazegen/       deterministic maze text for tests, benchmarks and demos
//	batch/         many grids, one call, results in job order
//	cmd/reindeer/  CLI printing "Part 1" (cost) and "Part 2" (tile count)
//
// Quick ASCII example:
//
//	#####
//	#...#
//	#S#E#      both ways around the centre wall cost 3004,
//	#...#      so all eight floor cells are optimal.
//	#####
//
//	go run ./cmd/reindeer input.txt
package aoc24
