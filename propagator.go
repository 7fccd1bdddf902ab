package wavebuilder

// Propagator lists, for each pattern and relative offset, the patterns that
// agree with it on the overlapping cells.
type Propagator struct {
	n    int
	span int // 2N-1
	sets [][]int
}

// NewPropagator materializes the full compatibility table for c. Offsets
// without overlap are compatible with everything.
func NewPropagator(c *Catalog) *Propagator {
	n := c.N
	T := c.T()
	span := 2*n - 1
	p := &Propagator{
		n:    n,
		span: span,
		sets: make([][]int, T*span*span),
	}
	for t := 0; t < T; t++ {
		for ox := 0; ox < span; ox++ {
			for oy := 0; oy < span; oy++ {
				var list []int
				for t2 := 0; t2 < T; t2++ {
					if agrees(c.Patterns[t], c.Patterns[t2], n, ox-n+1, oy-n+1) {
						list = append(list, t2)
					}
				}
				p.sets[p.offset(t, ox, oy)] = list
			}
		}
	}
	return p
}

func (p *Propagator) offset(t, ox, oy int) int {
	return (t*p.span+ox)*p.span + oy
}

// Compatible returns the patterns that may sit at offset (dx,dy) from t,
// with |dx|,|dy| < N.
func (p *Propagator) Compatible(t, dx, dy int) []int {
	return p.sets[p.offset(t, dx+p.n-1, dy+p.n-1)]
}
