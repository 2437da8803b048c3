// Package placement implements the pure geometry of floating-element
// positioning: parsing placements, computing candidate coordinates, scoring
// viewport overflow, flipping to the opposite side, and shifting back into the
// padded viewport.
//
// The main entry point is [Compute], which chains [Coords], [DetectOverflow],
// [Resolve] and [Shift] for one input. Every function is deterministic and never
// fails: degenerate input yields a well-defined position.
package placement
