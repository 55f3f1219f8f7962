package surface

import (
	"fmt"
	"image/color"
	"math"

	"github.com/esimov/tricolor"
	"golang.org/x/exp/slices"
)

// LayerKind identifies what a layer draws.
type LayerKind int

const (
	// ScatterLayer is a set of colored markers.
	ScatterLayer LayerKind = iota
	// OutlineLayer is the edge set of a triangle.
	OutlineLayer
)

// Default z-orders, scatter markers below lines.
const (
	scatterZOrder = 1
	outlineZOrder = 2
)

// Layer is a single drawing call retained by the axes.
type Layer struct {
	Kind   LayerKind
	ZOrder float64

	// Scatter layers.
	Points []tricolor.ColoredPoint
	Style  MarkerStyle

	// Outline layers.
	Triangle tricolor.Triangle
	Width    float64
	Color    color.Color
}

// Axes keeps the drawing calls and the axis configuration until the
// surface gets rasterized or serialized. Limits default to [0, 1].
type Axes struct {
	xlim   [2]float64
	ylim   [2]float64
	equal  bool
	hidden bool
	layers []Layer
}

func newAxes() Axes {
	return Axes{
		xlim: [2]float64{0, 1},
		ylim: [2]float64{0, 1},
	}
}

// Scatter retains the points as a marker layer. The point slice is kept by
// reference. An "s" or "size" option overrides size.
func (a *Axes) Scatter(points []tricolor.ColoredPoint, size float64, opts tricolor.Options) error {
	style, zorder, err := decodeStyle(size, opts)
	if err != nil {
		return err
	}
	a.layers = append(a.layers, Layer{
		Kind:   ScatterLayer,
		ZOrder: zorder,
		Points: points,
		Style:  style,
	})
	return nil
}

// TriPlot retains the outline of t.
func (a *Axes) TriPlot(t tricolor.Triangle, width float64, c color.Color) error {
	if width < 0 || math.IsNaN(width) {
		return fmt.Errorf("invalid line width %v", width)
	}
	if c == nil {
		c = color.Black
	}
	a.layers = append(a.layers, Layer{
		Kind:     OutlineLayer,
		ZOrder:   outlineZOrder,
		Triangle: t,
		Width:    width,
		Color:    c,
	})
	return nil
}

// SetAspectEqual locks the aspect ratio.
func (a *Axes) SetAspectEqual() { a.equal = true }

// SetXLim sets the horizontal data range.
func (a *Axes) SetXLim(lo, hi float64) { a.xlim = [2]float64{lo, hi} }

// SetYLim sets the vertical data range.
func (a *Axes) SetYLim(lo, hi float64) { a.ylim = [2]float64{lo, hi} }

// HideAxes disables the axes frame.
func (a *Axes) HideAxes() { a.hidden = true }

// XLim returns the horizontal data range.
func (a *Axes) XLim() (lo, hi float64) { return a.xlim[0], a.xlim[1] }

// YLim returns the vertical data range.
func (a *Axes) YLim() (lo, hi float64) { return a.ylim[0], a.ylim[1] }

// AspectEqual reports whether the aspect ratio is locked.
func (a *Axes) AspectEqual() bool { return a.equal }

// AxesHidden reports whether the axes frame is hidden.
func (a *Axes) AxesHidden() bool { return a.hidden }

// Layers returns the retained layers in drawing order: ascending z-order,
// insertion order among equal z-orders.
func (a *Axes) Layers() []Layer {
	layers := slices.Clone(a.layers)
	slices.SortStableFunc(layers, func(l, m Layer) int {
		switch {
		case l.ZOrder < m.ZOrder:
			return -1
		case l.ZOrder > m.ZOrder:
			return 1
		}
		return 0
	})
	return layers
}

// transform maps data coordinates to pixel coordinates, y pointing down.
type transform struct {
	xlo, ylo float64
	x0, y0   float64
	sx, sy   float64
}

func (t transform) apply(p tricolor.Point) (float64, float64) {
	return t.x0 + (p.X-t.xlo)*t.sx, t.y0 - (p.Y-t.ylo)*t.sy
}

// fit fits the data limits into a w×h pixel area shrunk by margin on
// every side. With a locked aspect ratio both axes share the smaller scale
// and the data box is centered.
func (a *Axes) fit(w, h, margin float64) transform {
	pw := math.Max(w-2*margin, 1)
	ph := math.Max(h-2*margin, 1)

	xr := span(a.xlim)
	yr := span(a.ylim)

	sx, sy := pw/xr, ph/yr
	x0, y0 := margin, h-margin
	if a.equal {
		s := math.Min(sx, sy)
		sx, sy = s, s
		x0 += (pw - xr*s) / 2
		y0 -= (ph - yr*s) / 2
	}
	return transform{
		xlo: a.xlim[0], ylo: a.ylim[0],
		x0: x0, y0: y0,
		sx: sx, sy: sy,
	}
}

// frame returns the pixel rectangle covered by the data limits.
func (a *Axes) frame(t transform) (x, y, w, h float64) {
	x0, y0 := t.apply(tricolor.Point{X: a.xlim[0], Y: a.ylim[1]})
	x1, y1 := t.apply(tricolor.Point{X: a.xlim[1], Y: a.ylim[0]})
	return x0, y0, x1 - x0, y1 - y0
}

func span(lim [2]float64) float64 {
	r := lim[1] - lim[0]
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// pixels converts a length in points to pixels at the given resolution.
func pixels(pt, dpi float64) float64 {
	return pt * dpi / 72
}

// markerRadius returns the pixel radius of a marker with the given area in points squared.
func markerRadius(area, dpi float64) float64 {
	return pixels(math.Sqrt(area), dpi) / 2
}
