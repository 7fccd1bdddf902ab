package wavebuilder

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// RandomSource supplies the uniform draws used for cell selection noise and pattern picks.
type RandomSource interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Seed restarts the source. Run calls it once per attempt.
	Seed(seed int64)
}

// SystemSource is the production RandomSource, an xorshift* generator.
type SystemSource struct {
	src *xorshiftStar
	rnd *rand.Rand
}

var (
	_ RandomSource = (*SystemSource)(nil)
	_ RandomSource = (*ReplaySource)(nil)
)

func NewSystemSource(seed int64) *SystemSource {
	src := &xorshiftStar{}
	src.Seed(seed)
	return &SystemSource{src: src, rnd: rand.New(src)}
}

func (s *SystemSource) Float64() float64 { return s.rnd.Float64() }

func (s *SystemSource) Seed(seed int64) { s.src.Seed(seed) }

type xorshiftStar struct {
	state uint64
}

var _ rand.Source64 = (*xorshiftStar)(nil)

func (r *xorshiftStar) Seed(seed int64) {
	r.state = uint64(seed) ^ 0x9e3779b97f4a7c15
	if r.state == 0 {
		r.state = 1
	}
}

func (r *xorshiftStar) Uint64() uint64 {
	state := r.state
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	r.state = state
	return state * 2685821657736338717
}

func (r *xorshiftStar) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// ReplaySource replays a recorded sequence cyclically. Two runs with the same
// sequence and seed draw identical values.
//
// Observe draws noise only for cells with positive entropy, plus one value
// per pick, so a sequence recorded by a solver that draws for every cell is
// consumed at a different pace and will not reproduce that solver's output.
type ReplaySource struct {
	values []float64
	pos    int
}

// NewReplaySource copies values; each must lie in [0,1).
func NewReplaySource(values []float64) (*ReplaySource, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	for i, v := range values {
		if v < 0 || v >= 1 {
			return nil, fmt.Errorf("value %d (%g): %w", i, v, ErrSequenceRange)
		}
	}
	return &ReplaySource{values: append([]float64(nil), values...)}, nil
}

// ReadReplaySource parses one float per line. Blank lines are skipped.
func ReadReplaySource(r io.Reader) (*ReplaySource, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewReplaySource(values)
}

func (s *ReplaySource) Float64() float64 {
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Seed moves the replay position to seed modulo the sequence length.
func (s *ReplaySource) Seed(seed int64) {
	n := int64(len(s.values))
	s.pos = int(((seed % n) + n) % n)
}

// Len returns the length of the recorded sequence.
func (s *ReplaySource) Len() int { return len(s.values) }
