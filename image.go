package wavebuilder

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

func pixOffset(w, x, y int) int {
	return (y*w + x) * 3
}

// Pixels returns the output as interleaved RGB bytes, len = W*H*3, row-major.
// Each pixel averages the colors that every pattern still possible at every
// covering window assigns to it. It fails with ErrNotCollapsed unless the
// last run succeeded.
func (m *OverlappingModel) Pixels() ([]uint8, error) {
	if m.solver.State() != Succeeded {
		return nil, ErrNotCollapsed
	}
	w, h := m.Size()
	n := m.catalog.N
	T := m.catalog.T()
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			contributors := 0
			var r, g, b float64
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					sx := ((x-dx)%w + w) % w
					sy := ((y-dy)%h + h) % h
					if m.OnBoundary(sx, sy) {
						continue
					}
					for t := 0; t < T; t++ {
						if !m.solver.Possible(sx, sy, t) {
							continue
						}
						c := m.catalog.Color(t, dx, dy)
						r += c.R
						g += c.G
						b += c.B
						contributors++
					}
				}
			}
			if contributors == 0 {
				continue
			}
			k := float64(contributors)
			avg := colorful.Color{R: r / k, G: g / k, B: b / k}
			off := pixOffset(w, x, y)
			pix[off], pix[off+1], pix[off+2] = avg.Clamped().RGB255()
		}
	}
	return pix, nil
}

// Image returns Pixels as an opaque RGBA image.
func (m *OverlappingModel) Image() (*image.RGBA, error) {
	pix, err := m.Pixels()
	if err != nil {
		return nil, err
	}
	w, h := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := pixOffset(w, x, y)
			img.SetRGBA(x, y, color.RGBA{pix[off], pix[off+1], pix[off+2], 255})
		}
	}
	return img, nil
}
