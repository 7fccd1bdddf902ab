package wavebuilder

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagatorSymmetric(t *testing.T) {
	samples := map[string]struct {
		rows []string
		n    int
	}{
		"Stripes":  {[]string{"ABAB", "ABAB", "ABAB", "ABAB"}, 2},
		"Mixed":    {[]string{"ABCA", "CABD", "BCAA", "ADBC"}, 2},
		"MixedN3":  {[]string{"ABCA", "CABD", "BCAA", "ADBC"}, 3},
		"SingleN1": {[]string{"AB", "CD"}, 1},
	}
	for name, s := range samples {
		t.Run(name, func(t *testing.T) {
			c, err := ExtractCatalog(sampleFromRows(s.rows...), s.n, true, 8)
			require.NoError(t, err)
			p := NewPropagator(c)
			r := s.n - 1
			for a := 0; a < c.T(); a++ {
				for dx := -r; dx <= r; dx++ {
					for dy := -r; dy <= r; dy++ {
						for b := 0; b < c.T(); b++ {
							forward := slices.Contains(p.Compatible(a, dx, dy), b)
							backward := slices.Contains(p.Compatible(b, -dx, -dy), a)
							if forward != backward {
								t.Fatalf("pattern %d at (%d,%d) from %d: %v, reverse %v", b, dx, dy, a, forward, backward)
							}
						}
					}
				}
			}
		})
	}
}

func TestPropagatorZeroOffsetIsIdentity(t *testing.T) {
	c, err := ExtractCatalog(stripes(), 2, true, 8)
	require.NoError(t, err)
	p := NewPropagator(c)
	for a := 0; a < c.T(); a++ {
		assert.Equal(t, []int{a}, p.Compatible(a, 0, 0))
	}
}

func TestPropagatorStripes(t *testing.T) {
	c, err := ExtractCatalog(stripes(), 2, true, 1)
	require.NoError(t, err)
	require.Equal(t, 2, c.T())
	p := NewPropagator(c)

	// AB|AB is followed by BA|BA horizontally and by itself vertically.
	assert.Equal(t, []int{1}, p.Compatible(0, 1, 0))
	assert.Equal(t, []int{1}, p.Compatible(0, -1, 0))
	assert.Equal(t, []int{0}, p.Compatible(0, 0, 1))
	assert.Equal(t, []int{1}, p.Compatible(1, 0, -1))
	assert.Equal(t, []int{1}, p.Compatible(0, 1, 1), "diagonal overlap is a single cell")
}
