// Package render draws a grid.Grid and a path as raster images.
//
// Layers, bottom to top:
//
//   - cell states: Free, Obstacle and already marked Path cells;
//   - the supplied path;
//   - start and goal markers;
//   - optional 1px grid lines.
//
// Image and PNG produce a single still. Frames and GIF produce a step-by-step
// animation in which every frame adds one more path cell.
//
// Rendering never modifies the grid.
package render
