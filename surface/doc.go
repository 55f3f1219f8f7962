// Package surface provides drawing surfaces for the tricolor colorbar.
//
// Canvas rasterizes through a gg context and SVG emits a vector document.
// Both retain the drawing calls and the axis configuration, so the axis
// limits may be set after the points have been scattered.
package surface
