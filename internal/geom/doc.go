// Package geom holds the value types shared by the placement math and the
// host adapters: viewport-relative rectangles, sizes, and points.
//
// All coordinates are float64 in host units (pixels for graphical hosts, cells
// for terminal hosts). Types are re-exported through the root floating package
// for public consumption.
package geom
