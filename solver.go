package wavebuilder

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// noiseScale perturbs positive entropies so ties break randomly.
const noiseScale = 1e-6

// Stats counts the work done by the current attempt.
type Stats struct {
	Observations int
	Passes       int
	Cleared      int
}

// Solver runs observe/propagate over a Model until every cell collapses or
// a contradiction appears.
type Solver struct {
	model Model
	rng   RandomSource
	wave  *wave

	weights    []float64
	logWeights []float64
	logT       float64
	dist       []float64

	state Result
	stats Stats

	// Verbose logs one line per finished attempt.
	Verbose bool
}

func NewSolver(model Model, rng RandomSource) *Solver {
	w, h := model.Size()
	weights := model.Weights()
	T := len(weights)
	logWeights := make([]float64, T)
	for t, v := range weights {
		logWeights[t] = math.Log(v)
	}
	return &Solver{
		model:      model,
		rng:        rng,
		wave:       newWave(w, h, T),
		weights:    weights,
		logWeights: logWeights,
		logT:       math.Log(float64(T)),
		dist:       make([]float64, T),
	}
}

// Reset makes every pattern possible everywhere and applies the ground constraint.
func (s *Solver) Reset() {
	s.wave.reset()
	s.state = Running
	s.stats = Stats{}

	g, ok := s.model.Ground()
	if !ok {
		return
	}
	wv := s.wave
	for x := 0; x < wv.w; x++ {
		bottom := wv.cell(x, wv.h-1)
		row := wv.row(bottom)
		for t := range row {
			if t != g && row[t] {
				row[t] = false
				s.stats.Cleared++
			}
		}
		wv.markDirty(bottom)

		for y := 0; y < wv.h-1; y++ {
			c := wv.cell(x, y)
			if wv.possible[c*wv.t+g] {
				wv.possible[c*wv.t+g] = false
				s.stats.Cleared++
			}
			wv.markDirty(c)
		}
	}
	for s.Propagate() {
	}
}

// Observe collapses the non-boundary cell of lowest positive entropy to a
// single pattern. It returns Succeeded when no such cell is left and
// Contradiction when some cell has no possible pattern.
func (s *Solver) Observe() Result {
	wv := s.wave
	best := math.MaxFloat64
	argmin := -1

	for x := 0; x < wv.w; x++ {
		for y := 0; y < wv.h; y++ {
			if s.model.OnBoundary(x, y) {
				continue
			}
			c := wv.cell(x, y)
			row := wv.row(c)

			entropy, ok := s.entropy(row)
			if !ok {
				s.state = Contradiction
				return s.state
			}
			if entropy > 0 {
				noise := noiseScale * s.rng.Float64()
				if entropy+noise < best {
					best = entropy + noise
					argmin = c
				}
			}
		}
	}

	if argmin == -1 {
		s.state = Succeeded
		return s.state
	}

	row := wv.row(argmin)
	for t, ok := range row {
		if ok {
			s.dist[t] = s.weights[t]
		} else {
			s.dist[t] = 0
		}
	}
	r := pickWeighted(s.dist, s.rng.Float64())
	for t := range row {
		if t != r && row[t] {
			row[t] = false
			s.stats.Cleared++
		}
	}
	wv.markDirty(argmin)
	s.stats.Observations++
	return Running
}

// entropy returns the weighted entropy of the patterns still allowed in row.
// ok is false when their total weight is zero.
func (s *Solver) entropy(row []bool) (entropy float64, ok bool) {
	amount := 0
	sum := 0.0
	for t, allowed := range row {
		if allowed {
			amount++
			sum += s.weights[t]
		}
	}
	if sum == 0 {
		return 0, false
	}
	switch amount {
	case 1:
		return 0, true
	case len(row):
		return s.logT, true
	}
	mainSum := 0.0
	for t, allowed := range row {
		if allowed {
			mainSum += s.weights[t] * s.logWeights[t]
		}
	}
	return math.Log(sum) - mainSum/sum, true
}

// Propagate processes the cells queued before the call, removing patterns
// at their neighbors that no longer have a compatible partner. It reports
// whether any possibility was removed.
func (s *Solver) Propagate() bool {
	wv := s.wave
	batch := wv.takeQueue()
	if len(batch) == 0 {
		return false
	}
	reach := s.model.Reach()
	periodic := s.model.Periodic()
	change := false

	for _, c1 := range batch {
		wv.dirty[c1] = false
		x1, y1 := c1%wv.w, c1/wv.w
		src := wv.row(c1)

		for dx := -reach; dx <= reach; dx++ {
			for dy := -reach; dy <= reach; dy++ {
				x2, y2 := x1+dx, y1+dy
				// A non-periodic grid has no cells past its edges, so the
				// ground row only constrains the rows above it.
				if periodic {
					x2 = ((x2 % wv.w) + wv.w) % wv.w
					y2 = ((y2 % wv.h) + wv.h) % wv.h
				} else if x2 < 0 || y2 < 0 || x2 >= wv.w || y2 >= wv.h || s.model.OnBoundary(x2, y2) {
					continue
				}

				c2 := wv.cell(x2, y2)
				allowed := wv.row(c2)
				for t2, ok := range allowed {
					if !ok {
						continue
					}
					supported := false
					for _, t := range s.model.Compatible(t2, -dx, -dy) {
						if src[t] {
							supported = true
							break
						}
					}
					if !supported {
						allowed[t2] = false
						wv.markDirty(c2)
						change = true
						s.stats.Cleared++
					}
				}
			}
		}
	}
	s.stats.Passes++
	return change
}

// Run seeds the random source, resets the wave and alternates observation
// with propagation to a fixed point. limit bounds the number of
// observations; 0 means no bound. Running out of observations yields Incomplete.
func (s *Solver) Run(seed int64, limit int) Result {
	s.rng.Seed(seed)
	s.Reset()
	for l := 0; limit == 0 || l < limit; l++ {
		if r := s.Observe(); r != Running {
			s.logf("seed %d: %s after %d observations", seed, r, s.stats.Observations)
			return r
		}
		for s.Propagate() {
		}
	}
	s.state = Incomplete
	s.logf("seed %d: %s after %d observations", seed, s.state, s.stats.Observations)
	return s.state
}

func (s *Solver) logf(format string, args ...any) {
	if s.Verbose {
		log.Printf("wavebuilder: "+format, args...)
	}
}

// State returns the outcome of the last Observe or Run.
func (s *Solver) State() Result { return s.state }

// Stats returns counters for the current attempt.
func (s *Solver) Stats() Stats { return s.stats }

// Possible reports whether pattern t is still allowed at (x,y).
func (s *Solver) Possible(x, y, t int) bool {
	return s.wave.possible[s.wave.cell(x, y)*s.wave.t+t]
}

// Count returns the number of patterns still allowed at (x,y).
func (s *Solver) Count(x, y int) int {
	return s.wave.count(s.wave.cell(x, y))
}

// normalizeWeights scales w to sum to 1. An all-zero w becomes uniform.
func normalizeWeights(w []float64) {
	sum := floats.Sum(w)
	if sum == 0 {
		for i := range w {
			w[i] = 1
		}
		sum = float64(len(w))
	}
	floats.Scale(1/sum, w)
}

// pickWeighted returns the first index whose cumulative normalized weight
// reaches threshold. Zero-weight entries are never picked unless all are zero.
func pickWeighted(w []float64, threshold float64) int {
	normalizeWeights(w)
	last := 0
	x := 0.0
	for i, v := range w {
		if v == 0 {
			continue
		}
		x += v
		last = i
		if threshold <= x {
			return i
		}
	}
	return last
}
