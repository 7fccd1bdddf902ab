package wavebuilder

// Pattern is an N×N block of palette indices stored row-major, p[x+y*N].
type Pattern []uint8

func newPattern(n int, f func(x, y int) uint8) Pattern {
	p := make(Pattern, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p[x+y*n] = f(x, y)
		}
	}
	return p
}

// rotate turns p by 90 degrees: new[x,y] = old[N-1-y, x].
func (p Pattern) rotate(n int) Pattern {
	return newPattern(n, func(x, y int) uint8 { return p[n-1-y+x*n] })
}

// reflect mirrors p horizontally: new[x,y] = old[N-1-x, y].
func (p Pattern) reflect(n int) Pattern {
	return newPattern(n, func(x, y int) uint8 { return p[n-1-x+y*n] })
}

// variants returns the eight symmetry variants in counting order:
// base, reflect, rotate, reflect, rotate, reflect, rotate, reflect.
func (p Pattern) variants(n int) [8]Pattern {
	var ps [8]Pattern
	ps[0] = p
	ps[1] = ps[0].reflect(n)
	ps[2] = ps[0].rotate(n)
	ps[3] = ps[2].reflect(n)
	ps[4] = ps[2].rotate(n)
	ps[5] = ps[4].reflect(n)
	ps[6] = ps[4].rotate(n)
	ps[7] = ps[6].reflect(n)
	return ps
}

// index reads p as a mixed-radix number in the given base, first cell most
// significant. The result is exact while base^len(p) fits in a uint64.
func (p Pattern) index(base int) uint64 {
	var result uint64
	power := uint64(1)
	for i := len(p) - 1; i >= 0; i-- {
		result += uint64(p[i]) * power
		power *= uint64(base)
	}
	return result
}

// key is the structural identity used for deduplication.
func (p Pattern) key() string { return string(p) }

// agrees reports whether q, shifted by (dx,dy) against p, matches p on the overlap.
func agrees(p, q Pattern, n, dx, dy int) bool {
	xmin, xmax := dx, n
	if dx < 0 {
		xmin, xmax = 0, dx+n
	}
	ymin, ymax := dy, n
	if dy < 0 {
		ymin, ymax = 0, dy+n
	}
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p[x+n*y] != q[x-dx+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}
