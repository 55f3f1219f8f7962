package tricolor

import (
	"context"
	"fmt"
	"image/color"

	"golang.org/x/exp/slog"
)

const (
	// MarkerSize is the scatter marker area, in points squared.
	MarkerSize = 2
	// BorderWidth is the line width of the triangle outline, in points.
	BorderWidth = 2
)

// Surface is a 2D drawing context the colorbar is rendered on.
type Surface interface {
	// Scatter draws every point as a marker of the given area filled with
	// the point color. opts carries caller supplied styling.
	Scatter(points []ColoredPoint, size float64, opts Options) error
	// SetAspectEqual locks the aspect ratio so that one unit has the same
	// length on both axes.
	SetAspectEqual()
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	HideAxes()
	// TriPlot draws the edges of t.
	TriPlot(t Triangle, width float64, c color.Color) error
}

// Colorbar : type with the colorbar rendering options
type Colorbar struct {
	// Density is the number of lattice samples per axis.
	Density int
	// Border enables the triangle outline.
	Border bool
	// Style is forwarded to the scatter call.
	Style Options
	// Logger receives debug records about the rendering. Nil disables logging.
	Logger *slog.Logger
}

// New returns a Colorbar with the given density and border setting.
func New(density int, border bool) *Colorbar {
	return &Colorbar{Density: density, Border: border}
}

// Draw renders a colorbar with the given density on the surface and
// forwards opts to the scatter call.
func Draw(s Surface, density int, border bool, opts Options) error {
	c := &Colorbar{Density: density, Border: border, Style: opts}
	return c.Draw(s)
}

// Draw renders the colorbar on the surface.
func (c *Colorbar) Draw(s Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	points, err := Grid(c.Density)
	if err != nil {
		return err
	}
	c.debug("colorbar grid computed",
		slog.Int("density", c.Density),
		slog.Int("lattice", c.Density*c.Density),
		slog.Int("points", len(points)),
	)

	if err := s.Scatter(points, MarkerSize, c.Style); err != nil {
		return fmt.Errorf("tricolor: scatter: %w", err)
	}
	s.SetAspectEqual()
	s.SetXLim(0, 1)
	s.SetYLim(0, ApexY)
	s.HideAxes()

	if c.Border {
		if err := s.TriPlot(Reference(), BorderWidth, color.Black); err != nil {
			return fmt.Errorf("tricolor: border: %w", err)
		}
	}
	c.debug("colorbar drawn", slog.Bool("border", c.Border))

	return nil
}

func (c *Colorbar) debug(msg string, attrs ...slog.Attr) {
	if c.Logger == nil {
		return
	}
	c.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
