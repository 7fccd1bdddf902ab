package wavebuilder

import (
	"image"
	"image/color"
)

var testColors = map[byte]color.RGBA{
	'A': {200, 30, 30, 255},
	'B': {20, 20, 180, 255},
	'C': {40, 160, 40, 255},
	'D': {250, 250, 250, 255},
}

// sampleFromRows builds an image with one pixel per letter of rows.
func sampleFromRows(rows ...string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			img.SetRGBA(x, y, testColors[row[x]])
		}
	}
	return img
}

func stripes() *image.RGBA {
	return sampleFromRows(
		"ABAB",
		"ABAB",
		"ABAB",
		"ABAB",
	)
}

func testOptions(n, w, h int, periodic bool, symmetry int) Options {
	opt := DefaultOptions()
	opt.N = n
	opt.Width, opt.Height = w, h
	opt.PeriodicInput = periodic
	opt.PeriodicOutput = periodic
	opt.Symmetry = symmetry
	return opt
}
