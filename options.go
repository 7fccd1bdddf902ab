package wavebuilder

import (
	"fmt"

	"github.com/setanarut/wavebuilder/utils"
)

type Options struct {
	// Pattern size. Each output cell is constrained by the N×N windows covering it.
	// Typical values: 2-3. Larger N copies bigger chunks of the sample and
	// makes contradictions more likely.
	N int
	// Output size in cells (pixels).
	Width, Height int
	// Treat the sample as a torus when collecting windows.
	PeriodicInput bool
	// Wrap the output so it tiles seamlessly. When false the last N-1 rows
	// and columns are only covered by windows anchored further in.
	PeriodicOutput bool
	// Number of symmetry variants counted per window, 1-8.
	// 1 = as sampled, 2 = plus mirror, 8 = all rotations and reflections.
	Symmetry int
	// Pattern forced along the bottom row and forbidden elsewhere.
	// Negative values count from the end; 0 disables it.
	Ground int
	// Reduce the sample to at most this many colors before extraction.
	// 0 keeps the sample colors as they are.
	MaxColors int
	// Palette extraction method used when MaxColors > 0.
	PaletteMethod utils.PaletteMethod
	// Random source; nil selects NewSystemSource(0).
	Random RandomSource
	// Log progress lines.
	Verbose bool
}

func DefaultOptions() Options {
	return Options{
		N:              3,
		Width:          48,
		Height:         48,
		PeriodicInput:  true,
		PeriodicOutput: true,
		Symmetry:       8,
		Ground:         0,
	}
}

// Validate checks the parameters that do not depend on the sample.
func (opt Options) Validate() error {
	if opt.N < 1 {
		return fmt.Errorf("N=%d: %w", opt.N, ErrPatternSize)
	}
	if opt.Width < 1 || opt.Height < 1 {
		return fmt.Errorf("%dx%d: %w", opt.Width, opt.Height, ErrOutputSize)
	}
	if !opt.PeriodicOutput && (opt.Width < opt.N || opt.Height < opt.N) {
		return fmt.Errorf("%dx%d non-periodic output smaller than N=%d: %w", opt.Width, opt.Height, opt.N, ErrOutputSize)
	}
	if opt.Symmetry < 1 || opt.Symmetry > 8 {
		return fmt.Errorf("symmetry=%d: %w", opt.Symmetry, ErrSymmetry)
	}
	if opt.MaxColors < 0 {
		return fmt.Errorf("max colors %d is negative", opt.MaxColors)
	}
	return nil
}
