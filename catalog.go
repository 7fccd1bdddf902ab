package wavebuilder

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Catalog holds the distinct patterns of a sample in first-seen order.
type Catalog struct {
	N        int
	Patterns []Pattern
	// Weights[t] is the number of symmetry-variant occurrences of Patterns[t].
	Weights []float64
	// Palette in first-occurrence order of a row-major scan.
	Palette []colorful.Color
}

// indexedSample is the sample quantized to palette indices.
type indexedSample struct {
	W, H int
	Pix  []uint8 // len = W*H
}

func (s indexedSample) at(x, y int) uint8 {
	return s.Pix[y*s.W+x]
}

// quantize maps every pixel to the index of its color in a first-occurrence palette.
func quantize(img image.Image) (indexedSample, []colorful.Color, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return indexedSample{}, nil, ErrEmptySample
	}
	sample := indexedSample{W: w, H: h, Pix: make([]uint8, w*h)}
	lookup := make(map[[3]uint8]uint8)
	var palette []colorful.Color
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			key := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			i, ok := lookup[key]
			if !ok {
				if len(palette) == 256 {
					return indexedSample{}, nil, ErrTooManyColors
				}
				i = uint8(len(palette))
				lookup[key] = i
				palette = append(palette, colorful.Color{
					R: float64(key[0]) / 255.0,
					G: float64(key[1]) / 255.0,
					B: float64(key[2]) / 255.0,
				})
			}
			sample.Pix[y*w+x] = i
		}
	}
	return sample, palette, nil
}

// ExtractCatalog collects every N×N window of sample (wrapping when periodic)
// together with its first symmetry variants.
func ExtractCatalog(sample image.Image, n int, periodic bool, symmetry int) (*Catalog, error) {
	if n < 1 {
		return nil, fmt.Errorf("N=%d: %w", n, ErrPatternSize)
	}
	if symmetry < 1 || symmetry > 8 {
		return nil, fmt.Errorf("symmetry=%d: %w", symmetry, ErrSymmetry)
	}
	indexed, palette, err := quantize(sample)
	if err != nil {
		return nil, err
	}
	if !periodic && (n > indexed.W || n > indexed.H) {
		return nil, fmt.Errorf("N=%d on a %dx%d non-periodic sample: %w", n, indexed.W, indexed.H, ErrPatternSize)
	}

	ymax, xmax := indexed.H, indexed.W
	if !periodic {
		ymax, xmax = indexed.H-n+1, indexed.W-n+1
	}

	c := &Catalog{N: n, Palette: palette}
	positions := make(map[string]int)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			base := newPattern(n, func(dx, dy int) uint8 {
				return indexed.at((x+dx)%indexed.W, (y+dy)%indexed.H)
			})
			ps := base.variants(n)
			for k := 0; k < symmetry; k++ {
				key := ps[k].key()
				if t, ok := positions[key]; ok {
					c.Weights[t]++
					continue
				}
				positions[key] = len(c.Patterns)
				c.Patterns = append(c.Patterns, ps[k])
				c.Weights = append(c.Weights, 1)
			}
		}
	}
	if len(c.Patterns) == 0 {
		return nil, ErrNoPatterns
	}
	return c, nil
}

// T returns the number of distinct patterns.
func (c *Catalog) T() int { return len(c.Patterns) }

// Entropy returns the Shannon entropy, in nats, of the normalized pattern weights.
func (c *Catalog) Entropy() float64 {
	p := append([]float64(nil), c.Weights...)
	floats.Scale(1/floats.Sum(p), p)
	return stat.Entropy(p)
}

// Color returns the palette color of cell (x,y) of pattern t.
func (c *Catalog) Color(t, x, y int) colorful.Color {
	return c.Palette[c.Patterns[t][x+y*c.N]]
}

// CanonicalIndex returns pattern t read as a base-len(Palette) number.
// ok is false when the index would overflow a uint64.
func (c *Catalog) CanonicalIndex(t int) (index uint64, ok bool) {
	if float64(c.N*c.N)*math.Log2(float64(len(c.Palette))) >= 64 {
		return 0, false
	}
	return c.Patterns[t].index(len(c.Palette)), true
}
