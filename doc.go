/*
Package tricolor renders a triangular colorbar representing the 2-simplex color space.

An N×N lattice is sampled over the unit square and only the points lying inside
the equilateral triangle (0, 0), (1, 0), (0.5, sqrt(0.75)) are kept. Each point is
colored by its barycentric weights relative to the triangle, used directly as the
red, green and blue channels, and the result is scattered on a drawing surface.

Any type implementing the Surface interface can be used as a target. The surface
subpackage provides a raster surface backed by gg and an SVG surface.

Example to render the colorbar into a PNG file:

	package main

	import (
		"log"

		"github.com/esimov/tricolor"
		"github.com/esimov/tricolor/surface"
	)

	func main() {
		canvas := surface.NewCanvas(600, 520)
		cb := tricolor.New(200, true)
		cb.Style = tricolor.Options{"alpha": 0.8}

		if err := cb.Draw(canvas); err != nil {
			log.Fatalf("Error rendering the colorbar: %v", err)
		}
		if err := canvas.SavePNG("colorbar.png"); err != nil {
			log.Fatal(err)
		}
	}

The lattice can also be computed without drawing it:

	points, err := tricolor.Grid(50)
	if err != nil {
		// handle error
	}
	for _, p := range points {
		fmt.Println(p.X, p.Y, p.Color.Hex())
	}
*/
package tricolor
