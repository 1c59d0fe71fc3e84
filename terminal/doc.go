// Package terminal is the capability layer the panel toolkit draws through.
//
// Core abstraction is Screen, a cell-addressed drawing surface with a
// blocking key read. The production implementation wraps a tcell screen;
// tests substitute any Screen implementation (including tcell's simulation
// screen) without touching panel logic.
//
// Coordinates are (row, col) with origin at the top-left of the surface.
// Region carries a clipped sub-rectangle of a Screen so each panel draws
// in its own relative coordinate space.
package terminal
