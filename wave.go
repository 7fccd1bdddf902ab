package wavebuilder

// wave is the flat possibility state: cell c = x + y*w owns possible[c*t : (c+1)*t].
type wave struct {
	w, h, t  int
	possible []bool
	dirty    []bool
	queue    []int
	spare    []int
}

func newWave(w, h, t int) *wave {
	return &wave{
		w:        w,
		h:        h,
		t:        t,
		possible: make([]bool, w*h*t),
		dirty:    make([]bool, w*h),
		queue:    make([]int, 0, w*h),
		spare:    make([]int, 0, w*h),
	}
}

func (wv *wave) cell(x, y int) int { return x + y*wv.w }

func (wv *wave) reset() {
	for i := range wv.possible {
		wv.possible[i] = true
	}
	for i := range wv.dirty {
		wv.dirty[i] = false
	}
	wv.queue = wv.queue[:0]
}

func (wv *wave) row(c int) []bool {
	return wv.possible[c*wv.t : (c+1)*wv.t]
}

// markDirty queues c unless it is already queued.
func (wv *wave) markDirty(c int) {
	if wv.dirty[c] {
		return
	}
	wv.dirty[c] = true
	wv.queue = append(wv.queue, c)
}

func (wv *wave) count(c int) int {
	n := 0
	for _, ok := range wv.row(c) {
		if ok {
			n++
		}
	}
	return n
}

// takeQueue hands out the cells queued so far; cells marked dirty while the
// batch is processed go to a fresh queue.
func (wv *wave) takeQueue() []int {
	batch := wv.queue
	wv.queue = wv.spare[:0]
	wv.spare = batch
	return batch
}
