// Package gridpath finds shortest paths across 2-D occupancy grids.
//
// What is gridpath?
//
//	A small toolkit built around one A* search:
//		• grid/    – occupancy model (Free, Obstacle, Path), text and image
//		             loaders, atomic save, connected free regions
//		• astar/   – A* search with deterministic tie-break, pluggable
//		             heuristic and step cost, expansion hook and limit
//		• render/  – PNG stills and animated GIF path playback
//		• config/  – YAML file, .env and GRIDPATH_* environment settings
//		• server/  – HTTP/JSON search, websocket path streaming, Prometheus metrics
//		• cmd/gridpath – CLI: find, render, serve, inspect
//
// Quick example:
//
//	0 0 0        1 0 0
//	0 5 0   →    1 5 0
//	0 0 0        1 1 1
//
//	g, _ := grid.Load("grid.txt")
//	res, _ := astar.FindPath(g, grid.C(0, 0), grid.C(2, 2))
//	if res.Found {
//		_ = res.Path.Mark(g)
//		_ = grid.Save("grid_with_path.txt", g)
//	}
//
// Searching never modifies the grid; marking the path is a separate call.
package gridpath
