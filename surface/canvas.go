package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/esimov/tricolor"
	"github.com/fogleman/gg"
)

var _ tricolor.Surface = (*Canvas)(nil)

// Canvas is a raster surface drawing through a gg context.
// Drawing calls are retained and rasterized on Image, EncodePNG or SavePNG.
type Canvas struct {
	*gg.Context
	Axes

	// DPI converts point based sizes to pixels.
	DPI float64
	// Margin is the pixel padding around the data area.
	Margin float64
	// Background fills the canvas before anything is drawn. Nil leaves it transparent.
	Background color.Color
}

// NewCanvas returns a white canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Context:    gg.NewContext(width, height),
		Axes:       newAxes(),
		DPI:        100,
		Margin:     10,
		Background: color.White,
	}
}

// Image rasterizes the retained layers and returns the resulting image.
func (c *Canvas) Image() image.Image {
	c.render()
	return c.Context.Image()
}

// EncodePNG rasterizes the canvas and writes it to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	c.render()
	return c.Context.EncodePNG(w)
}

// SavePNG rasterizes the canvas and saves it as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	c.render()
	return c.Context.SavePNG(path)
}

func (c *Canvas) render() {
	ctx := c.Context
	ctx.Push()
	defer ctx.Pop()

	ctx.ResetClip()
	ctx.Identity()
	bg := c.Background
	if bg == nil {
		bg = color.Transparent
	}
	ctx.SetColor(bg)
	ctx.Clear()
	t := c.fit(float64(ctx.Width()), float64(ctx.Height()), c.Margin)

	for _, l := range c.Layers() {
		switch l.Kind {
		case ScatterLayer:
			c.drawScatter(t, l)
		case OutlineLayer:
			c.drawOutline(t, l)
		}
	}
	if !c.AxesHidden() {
		x, y, w, h := c.frame(t)
		ctx.DrawRectangle(x, y, w, h)
		ctx.SetColor(color.Black)
		ctx.SetLineWidth(pixels(1, c.DPI))
		ctx.Stroke()
	}
}

func (c *Canvas) drawScatter(t transform, l Layer) {
	ctx := c.Context
	style := l.Style
	r := markerRadius(style.Size, c.DPI)

	for _, p := range l.Points {
		x, y := t.apply(p.Point)
		switch style.Marker {
		case Square:
			ctx.DrawRectangle(x-r, y-r, 2*r, 2*r)
		default:
			ctx.DrawCircle(x, y, r)
		}
		ctx.SetFillStyle(gg.NewSolidPattern(withAlpha(p.Color, style.Alpha)))
		if style.EdgeColor == nil {
			ctx.Fill()
			continue
		}
		ctx.FillPreserve()
		ctx.SetStrokeStyle(gg.NewSolidPattern(withAlpha(style.EdgeColor, style.Alpha)))
		ctx.SetLineWidth(pixels(style.EdgeWidth, c.DPI))
		ctx.Stroke()
	}
}

func (c *Canvas) drawOutline(t transform, l Layer) {
	ctx := c.Context
	n := l.Triangle.Nodes

	ctx.Push()
	ctx.NewSubPath()
	x, y := t.apply(n[0])
	ctx.MoveTo(x, y)
	for _, p := range n[1:] {
		x, y = t.apply(p)
		ctx.LineTo(x, y)
	}
	ctx.ClosePath()

	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	ctx.SetLineWidth(pixels(l.Width, c.DPI))
	ctx.SetStrokeStyle(gg.NewSolidPattern(l.Color))
	ctx.Stroke()
	ctx.Pop()
}
