package tricolor

import (
	"fmt"
	"image/color"
)

// RGB is a color with float channels in the [0, 1] range.
// It satisfies the color.Color interface and is always opaque.
type RGB struct {
	R, G, B float64
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

// NRGBA converts the color to its 8 bit representation.
func (c RGB) NRGBA() color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

// Hex returns the color in #rrggbb notation.
func (c RGB) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Sum returns the sum of the three channels.
func (c RGB) Sum() float64 {
	return c.R + c.G + c.B
}

func channel(v float64) uint32 {
	return uint32(Clamp(v, 0, 1)*0xffff + 0.5)
}
