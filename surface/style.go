package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/esimov/tricolor"
)

// ErrUnsupportedOption is returned for a scatter option the surface does not know.
var ErrUnsupportedOption = errors.New("surface: unsupported option")

// Marker is the shape used for scatter points.
type Marker int

const (
	Circle Marker = iota
	Square
)

// MarkerStyle describes how the points of a scatter layer are drawn.
type MarkerStyle struct {
	// Size is the marker area in points squared.
	Size float64
	// Alpha is the opacity in [0, 1].
	Alpha  float64
	Marker Marker
	// EdgeColor strokes the marker outline when not nil.
	EdgeColor color.Color
	// EdgeWidth is the outline width in points.
	EdgeWidth float64
}

// decodeStyle builds the marker style out of the scatter options.
//
//	s, size               marker area in points squared
//	alpha                 opacity in [0, 1]
//	zorder                drawing order
//	marker                "o" (circle) or "s" (square)
//	edgecolors, edgecolor marker outline color
//	linewidths, linewidth marker outline width in points
func decodeStyle(size float64, opts tricolor.Options) (MarkerStyle, float64, error) {
	style := MarkerStyle{
		Size:      size,
		Alpha:     1,
		Marker:    Circle,
		EdgeWidth: 1,
	}
	zorder := float64(scatterZOrder)

	for _, key := range opts.Keys() {
		var err error
		switch key {
		case "s", "size":
			style.Size, err = positive(opts, key)
		case "alpha":
			var v float64
			if v, _, err = opts.Float(key); err == nil {
				if v < 0 || v > 1 || math.IsNaN(v) {
					err = fmt.Errorf("option %q: %v out of [0, 1]", key, v)
				}
				style.Alpha = v
			}
		case "zorder":
			if zorder, _, err = opts.Float(key); err == nil && math.IsNaN(zorder) {
				err = fmt.Errorf("option %q: must be a number, got NaN", key)
			}
		case "marker":
			var m string
			if m, _, err = opts.String(key); err == nil {
				style.Marker, err = parseMarker(m)
			}
		case "edgecolors", "edgecolor":
			style.EdgeColor, _, err = opts.Color(key)
		case "linewidths", "linewidth":
			style.EdgeWidth, err = positive(opts, key)
		default:
			err = fmt.Errorf("%w: %q", ErrUnsupportedOption, key)
		}
		if err != nil {
			return MarkerStyle{}, 0, err
		}
	}
	if math.IsNaN(style.Size) || style.Size < 0 {
		return MarkerStyle{}, 0, fmt.Errorf("invalid marker size %v", style.Size)
	}
	return style, zorder, nil
}

func positive(opts tricolor.Options, key string) (float64, error) {
	v, _, err := opts.Float(key)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) {
		return 0, fmt.Errorf("option %q: %v must not be negative", key, v)
	}
	return v, nil
}

func parseMarker(m string) (Marker, error) {
	switch m {
	case "o":
		return Circle, nil
	case "s":
		return Square, nil
	}
	return Circle, fmt.Errorf("option %q: unknown marker %q", "marker", m)
}

// withAlpha scales the opacity of c by alpha.
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * tricolor.Clamp(alpha, 0, 1)))
	return n
}

// hex formats c as #rrggbb and returns its opacity separately.
func hex(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 0xff
}
