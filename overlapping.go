package wavebuilder

import (
	"fmt"
	"image"
	"log"

	"github.com/setanarut/wavebuilder/utils"
)

// OverlappingModel synthesizes an image whose every N×N window appears in
// the sample (up to the chosen symmetries).
type OverlappingModel struct {
	SampleImage image.Image
	Options     Options

	catalog    *Catalog
	propagator *Propagator
	solver     *Solver
	ground     int
}

var _ Model = (*OverlappingModel)(nil)

// NewOverlappingModel extracts the pattern catalog and compatibility table
// from sample. All configuration errors are reported here.
func NewOverlappingModel(sample image.Image, opt Options) (*OverlappingModel, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if opt.Random == nil {
		opt.Random = NewSystemSource(0)
	}

	src := sample
	if opt.MaxColors > 0 {
		palette := utils.ExtractPalette(sample, opt.MaxColors, opt.PaletteMethod)
		if len(palette) == 0 {
			return nil, fmt.Errorf("reducing to %d colors: %w", opt.MaxColors, ErrEmptySample)
		}
		src = utils.Posterize(sample, palette)
		if opt.Verbose {
			log.Printf("wavebuilder: sample reduced to %d colors (%s)", len(palette), opt.PaletteMethod)
		}
	}

	catalog, err := ExtractCatalog(src, opt.N, opt.PeriodicInput, opt.Symmetry)
	if err != nil {
		return nil, err
	}
	T := catalog.T()
	m := &OverlappingModel{
		SampleImage: sample,
		Options:     opt,
		catalog:     catalog,
		propagator:  NewPropagator(catalog),
		ground:      ((opt.Ground % T) + T) % T,
	}
	m.solver = NewSolver(m, opt.Random)
	m.solver.Verbose = opt.Verbose
	if opt.Verbose {
		log.Printf("wavebuilder: %d colors, %d patterns, pattern entropy %.4f",
			len(catalog.Palette), T, catalog.Entropy())
		if g, ok := m.Ground(); ok {
			if ind, ok := catalog.CanonicalIndex(g); ok {
				log.Printf("wavebuilder: ground pattern %d (index %d)", g, ind)
			} else {
				log.Printf("wavebuilder: ground pattern %d", g)
			}
		}
	}
	return m, nil
}

func (m *OverlappingModel) Size() (int, int) { return m.Options.Width, m.Options.Height }

func (m *OverlappingModel) Periodic() bool { return m.Options.PeriodicOutput }

// OnBoundary is true for cells whose N×N window would leave a non-periodic output.
func (m *OverlappingModel) OnBoundary(x, y int) bool {
	n := m.catalog.N
	return !m.Options.PeriodicOutput && (x+n > m.Options.Width || y+n > m.Options.Height)
}

func (m *OverlappingModel) Weights() []float64 { return m.catalog.Weights }

func (m *OverlappingModel) Reach() int { return m.catalog.N - 1 }

func (m *OverlappingModel) Compatible(t, dx, dy int) []int {
	return m.propagator.Compatible(t, dx, dy)
}

// Ground returns the normalized ground pattern; pattern 0 means no ground.
func (m *OverlappingModel) Ground() (int, bool) {
	return m.ground, m.ground != 0
}

// Run solves with the given seed. See Solver.Run.
func (m *OverlappingModel) Run(seed int64, limit int) Result {
	return m.solver.Run(seed, limit)
}

// Reset clears the wave and applies the ground constraint without observing.
func (m *OverlappingModel) Reset() { m.solver.Reset() }

func (m *OverlappingModel) Catalog() *Catalog { return m.catalog }

func (m *OverlappingModel) Solver() *Solver { return m.solver }
