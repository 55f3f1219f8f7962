package surface

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/esimov/tricolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbAt(img image.Image, x, y int) (r, g, b uint8) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func TestCanvasColorbar(t *testing.T) {
	c := NewCanvas(220, 200)
	require.NoError(t, tricolor.Draw(c, 200, false, nil))
	img := c.Image()

	assert.Equal(t, image.Rect(0, 0, 220, 200), img.Bounds())

	// Outside the triangle, top left corner.
	r, g, b := rgbAt(img, 15, 20)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{r, g, b})

	// Centroid: all three weights close to one third.
	r, g, b = rgbAt(img, 110, 129)
	for _, v := range []uint8{r, g, b} {
		assert.InDelta(t, 85, int(v), 30)
	}

	// Near the bottom left corner red dominates.
	r, g, b = rgbAt(img, 14, 185)
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)

	// Bottom middle, without border, is a mix of red and green.
	r, _, b = rgbAt(img, 110, 186)
	assert.Greater(t, r, b)
}

func TestCanvasBorder(t *testing.T) {
	c := NewCanvas(220, 200)
	require.NoError(t, tricolor.Draw(c, 200, true, nil))
	img := c.Image()

	r, g, b := rgbAt(img, 110, 186)
	assert.Less(t, int(r), 60)
	assert.Less(t, int(g), 60)
	assert.Less(t, int(b), 60)
}

func TestCanvasAxesFrame(t *testing.T) {
	c := NewCanvas(220, 200)
	img := c.Image()
	r, _, _ := rgbAt(img, 10, 100)
	assert.Less(t, int(r), 128)

	c.HideAxes()
	img = c.Image()
	r, g, b := rgbAt(img, 10, 100)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{r, g, b})
}

func TestCanvasRenderIsRepeatable(t *testing.T) {
	c := NewCanvas(120, 110)
	require.NoError(t, tricolor.Draw(c, 40, true, tricolor.Options{"alpha": 0.7, "marker": "s"}))

	var first, second bytes.Buffer
	require.NoError(t, c.EncodePNG(&first))
	require.NoError(t, c.EncodePNG(&second))
	assert.Equal(t, first.Bytes(), second.Bytes())

	img, err := png.Decode(&first)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 110), img.Bounds())
}

func TestCanvasTransparentRenderIsRepeatable(t *testing.T) {
	c := NewCanvas(120, 110)
	c.Background = nil
	require.NoError(t, tricolor.Draw(c, 60, false, tricolor.Options{"alpha": 0.3, "marker": "s"}))

	_, _, _, first := c.Image().At(60, 70).RGBA()
	_, _, _, second := c.Image().At(60, 70).RGBA()
	assert.NotZero(t, first)
	assert.Equal(t, first, second)

	// Outside the triangle nothing is painted.
	_, _, _, a := c.Image().At(5, 5).RGBA()
	assert.Zero(t, a)
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(60, 60)
	require.NoError(t, tricolor.Draw(c, 20, true, nil))

	path := t.TempDir() + "/colorbar.png"
	require.NoError(t, c.SavePNG(path))
}
