// Package quarkgl is a minimal software 3D engine used to draw the plot scene.
//
// It covers what a function plot needs: triangle meshes (markers), line meshes
// (the function, axes and grid) and screen-aligned text sprites (tick labels).
// It is not a game engine and does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Sprites → Frame output.
//
// The renderer draws into a caller-provided Target and avoids allocations in
// the render hot path.
package quarkgl
