package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"
	"github.com/esimov/tricolor"
)

// svgUnit is the number of SVG user units per pixel. svgo works on integer
// coordinates, so the view box is scaled up to keep sub-pixel positions.
const svgUnit = 100

var _ tricolor.Surface = (*SVG)(nil)

// SVG is a vector surface serializing the retained layers as an SVG document.
type SVG struct {
	Axes

	Width, Height int
	Title         string
	// DPI converts point based sizes to SVG user units.
	DPI float64
	// Margin is the padding around the data area, in user units.
	Margin float64
	// Background fills the document. Nil leaves it transparent.
	Background color.Color
}

// NewSVG returns an SVG surface of the given size with a white background.
func NewSVG(width, height int) *SVG {
	return &SVG{
		Axes:       newAxes(),
		Width:      width,
		Height:     height,
		DPI:        100,
		Margin:     10,
		Background: color.White,
	}
}

// WriteTo writes the SVG document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	doc := svgo.New(&buf)

	doc.Startview(s.Width, s.Height, 0, 0, s.Width*svgUnit, s.Height*svgUnit)
	if s.Title != "" {
		doc.Title(s.Title)
	}
	if s.Background != nil {
		fill, opacity := hex(s.Background)
		style := append([]string{attr("fill", fill)}, opacityAttr("fill-opacity", opacity)...)
		doc.Rect(0, 0, s.Width*svgUnit, s.Height*svgUnit, style...)
	}

	t := s.fit(float64(s.Width), float64(s.Height), s.Margin)
	for _, l := range s.Layers() {
		switch l.Kind {
		case ScatterLayer:
			s.writeScatter(doc, t, l)
		case OutlineLayer:
			s.writeOutline(doc, t, l)
		}
	}
	if !s.AxesHidden() {
		x, y, w, h := s.frame(t)
		doc.Rect(units(x), units(y), units(w), units(h),
			attr("fill", "none"), attr("stroke", "#000000"), attr("stroke-width", units(pixels(1, s.DPI))))
	}
	doc.End()

	return buf.WriteTo(w)
}

func (s *SVG) writeScatter(doc *svgo.SVG, t transform, l Layer) {
	style := l.Style
	r := markerRadius(style.Size, s.DPI)

	group := opacityAttr("fill-opacity", style.Alpha)
	if style.EdgeColor != nil {
		c, opacity := hex(style.EdgeColor)
		group = append(group, attr("stroke", c), attr("stroke-width", units(pixels(style.EdgeWidth, s.DPI))))
		group = append(group, opacityAttr("stroke-opacity", opacity*style.Alpha)...)
	}
	doc.Group(group...)
	for _, p := range l.Points {
		x, y := t.apply(p.Point)
		fill := attr("fill", p.Color.Hex())
		switch style.Marker {
		case Square:
			doc.Rect(units(x-r), units(y-r), units(2*r), units(2*r), fill)
		default:
			doc.Circle(units(x), units(y), units(r), fill)
		}
	}
	doc.Gend()
}

func (s *SVG) writeOutline(doc *svgo.SVG, t transform, l Layer) {
	c, opacity := hex(l.Color)

	xs := make([]int, len(l.Triangle.Nodes))
	ys := make([]int, len(l.Triangle.Nodes))
	for i, p := range l.Triangle.Nodes {
		x, y := t.apply(p)
		xs[i], ys[i] = units(x), units(y)
	}
	style := []string{
		attr("fill", "none"),
		attr("stroke", c),
		attr("stroke-width", units(pixels(l.Width, s.DPI))),
		attr("stroke-linecap", "round"),
		attr("stroke-linejoin", "round"),
	}
	doc.Polygon(xs, ys, append(style, opacityAttr("stroke-opacity", opacity)...)...)
}

// units converts a pixel length to SVG user units.
func units(v float64) int {
	return int(math.Round(v * svgUnit))
}

func attr(name string, v any) string {
	return fmt.Sprintf("%s=%q", name, fmt.Sprint(v))
}

func opacityAttr(name string, v float64) []string {
	if v >= 1 {
		return nil
	}
	return []string{fmt.Sprintf("%s=\"%.3g\"", name, v)}
}
