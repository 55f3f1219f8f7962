package tricolor

import "fmt"

// MaxDensity is the largest accepted lattice density.
const MaxDensity = 4096

// ColoredPoint is a point of the colorbar together with its color.
type ColoredPoint struct {
	Point
	Color RGB
}

// Lattice returns n evenly spaced samples over [0, 1], both ends included.
func Lattice(n int) ([]float64, error) {
	if err := validateDensity(n); err != nil {
		return nil, err
	}
	step := 1 / float64(n-1)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) * step
	}
	samples[n-1] = 1

	return samples, nil
}

// Grid samples an N×N lattice over the unit square, keeps the points lying
// inside the reference triangle and colors them by their barycentric weights.
// Points are ordered row by row, from the bottom row upwards.
func Grid(density int) ([]ColoredPoint, error) {
	samples, err := Lattice(density)
	if err != nil {
		return nil, err
	}
	tri := Reference()

	var points []ColoredPoint
	for _, y := range samples {
		for _, x := range samples {
			p := Point{X: x, Y: y}
			if !Contains(p) {
				continue
			}
			points = append(points, ColoredPoint{
				Point: p,
				Color: tri.Barycentric(p, Tolerance),
			})
		}
	}
	return points, nil
}

func validateDensity(n int) error {
	if n < 2 || n > MaxDensity {
		return fmt.Errorf("%w: %d, must be between 2 and %d", ErrInvalidDensity, n, MaxDensity)
	}
	return nil
}
