package main

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/wavebuilder"
)

func TestCheckInput(t *testing.T) {
	cases := []struct {
		path string
		err  error
	}{
		{"samples/Flowers.png", nil},
		{"samples/Flowers.PNG", nil},
		{"photo.jpeg", nil},
		{"tiles.webp", nil},
		{"samples/Knots.xml", wavebuilder.ErrTiledModel},
		{"notes.txt", wavebuilder.ErrUnsupportedInput},
		{"noext", wavebuilder.ErrUnsupportedInput},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if err := checkInput(tc.path); !errors.Is(err, tc.err) {
				t.Errorf("checkInput(%q) = %v; want %v", tc.path, err, tc.err)
			}
		})
	}
}

func TestClampSymmetry(t *testing.T) {
	assert.Equal(t, 1, clampSymmetry(-3))
	assert.Equal(t, 1, clampSymmetry(0))
	assert.Equal(t, 5, clampSymmetry(5))
	assert.Equal(t, 8, clampSymmetry(12))
}

func TestGenerateRetries(t *testing.T) {
	sample := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x%2 == 0 {
				sample.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				sample.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	o := wavebuilder.DefaultOptions()
	o.N, o.Symmetry = 2, 1

	// Odd periodic width cannot hold alternating stripes.
	o.Width, o.Height = 3, 3
	m, err := wavebuilder.NewOverlappingModel(sample, o)
	require.NoError(t, err)
	result, used := generate(m, 10, 0, 4)
	assert.Equal(t, wavebuilder.Contradiction, result)
	assert.Equal(t, int64(13), used)

	o.Width, o.Height = 6, 6
	m, err = wavebuilder.NewOverlappingModel(sample, o)
	require.NoError(t, err)
	result, used = generate(m, 10, 0, 4)
	assert.Equal(t, wavebuilder.Succeeded, result)
	assert.Equal(t, int64(10), used)
}
