package utils

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaletteMethod(t *testing.T) {
	for _, m := range []PaletteMethod{PaletteMethodDominantColor, PaletteMethodKMeans} {
		got, err := ParsePaletteMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParsePaletteMethod("median-cut")
	assert.Error(t, err)
}

func TestSortPaletteByBrightness(t *testing.T) {
	palette := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
	}
	SortPaletteByBrightness(palette)
	assert.Equal(t, []colorful.Color{
		{R: 0, G: 0, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0, G: 1, B: 0},
		{R: 1, G: 1, B: 1},
	}, palette)
}

func TestPosterize(t *testing.T) {
	img := image.NewRGBA(image.Rect(2, 3, 6, 5))
	shades := []color.RGBA{
		{250, 10, 10, 255},
		{230, 40, 20, 255},
		{10, 10, 240, 255},
		{30, 50, 200, 255},
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			img.SetRGBA(x, y, shades[(x+y)%len(shades)])
		}
	}
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	out := Posterize(img, []colorful.Color{red, blue})
	require.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src := shades[(x+2+y+3)%len(shades)]
			want := color.RGBA{255, 0, 0, 255}
			if src.B > src.R {
				want = color.RGBA{0, 0, 255, 255}
			}
			assert.Equal(t, want, out.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestSelectDiverse(t *testing.T) {
	cands := []weightedColor{
		{Col: colorful.Color{R: 1}, Weight: 10},
		{Col: colorful.Color{R: 0.98, G: 0.01}, Weight: 9},
		{Col: colorful.Color{B: 1}, Weight: 1},
	}
	got := selectDiverse(cands, 2)
	require.Len(t, got, 2)
	assert.Equal(t, colorful.Color{R: 1}, got[0], "heaviest first")
	assert.Equal(t, colorful.Color{B: 1}, got[1], "farthest next")

	assert.Len(t, selectDiverse(cands, 10), 3)
	assert.Nil(t, selectDiverse(cands, 0))
}

func TestExtractKMeansPalette(t *testing.T) {
	// Left half red shades, right half blue shades.
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			d := uint8((x*5 + y*3) % 7)
			if x < 6 {
				img.SetRGBA(x, y, color.RGBA{210 + d, 20 + d, 25, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{15, 25 + d, 190 + d, 255})
			}
		}
	}

	palette := ExtractKMeansPalette(img, 2)
	require.NotEmpty(t, palette)
	require.LessOrEqual(t, len(palette), 2)

	out := Posterize(img, palette)
	left, right := out.RGBAAt(0, 0), out.RGBAAt(11, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			want := left
			if x >= 6 {
				want = right
			}
			assert.Equal(t, want, out.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	if len(palette) == 2 {
		assert.NotEqual(t, left, right)
	}
	assert.Nil(t, ExtractKMeansPalette(img, 0))
}
