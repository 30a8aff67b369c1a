package compute

// rowWindow is the set of input rows resident for the active tile.
//
// It owns block+F-1 row buffers ("slots") of width C+F-1. Logical row i of
// the current tile lives in physical slot (base+i) % len(slots). Advancing to
// the next tile never copies a row: it moves base forward by the number of
// rows the tile produced, so the tile's last F-1 rows become logical rows
// 0..F-2 of the next tile.
//
// Slot table for F=3, block=4 (six slots, s0..s5):
//
//	tile   base  logical 0 1 2 3 4 5   loaded this tile
//	0      0             s0 s1 s2 s3 s4 s5   s0 s1 (preload), s2..s5
//	1      4             s4 s5 s0 s1 s2 s3   s0..s3
//	2      2             s2 s3 s4 s5 s0 s1   s4 s5 s0 s1
//	3      0             s0 s1 s2 s3 s4 s5   s2..s5
//
// Logical rows 0 and 1 of tile k>0 are always the slots that held logical
// rows 4 and 5 of tile k-1.
type rowWindow struct {
	slots  [][]float64
	base   int
	filled int // logical rows currently valid

	src    []float64
	stride int
	next   int // index of the next input row to load
	carry  int // F-1

	loads int // rows copied from src since creation
}

func newRowWindow(src []float64, stride, block, f int) *rowWindow {
	n := block + f - 1
	backing := make([]float64, n*stride)
	slots := make([][]float64, n)
	for i := range slots {
		slots[i] = backing[i*stride : (i+1)*stride : (i+1)*stride]
	}
	return &rowWindow{
		slots:  slots,
		src:    src,
		stride: stride,
		carry:  f - 1,
	}
}

func (w *rowWindow) slot(logical int) []float64 {
	return w.slots[(w.base+logical)%len(w.slots)]
}

// row returns logical row i of the current tile.
func (w *rowWindow) row(i int) []float64 {
	return w.slot(i)
}

// preload loads the first F-1 input rows. Only the first tile needs it;
// later tiles inherit those rows through retainTrailing.
func (w *rowWindow) preload() {
	w.base = 0
	w.filled = 0
	w.loadNext(w.carry)
}

// loadNext copies the next count input rows into the window, directly after
// the rows already resident.
func (w *rowWindow) loadNext(count int) {
	for j := 0; j < count; j++ {
		off := w.next * w.stride
		copy(w.slot(w.filled), w.src[off:off+w.stride])
		w.filled++
		w.next++
	}
	w.loads += count
}

// retainTrailing drops the first produced rows of the tile and keeps the last
// F-1 resident rows as logical rows 0..F-2 for the next tile.
func (w *rowWindow) retainTrailing(produced int) {
	w.base = (w.base + produced) % len(w.slots)
	w.filled -= produced
}

// seek discards all resident rows and restarts loading at input row r.
func (w *rowWindow) seek(r int) {
	w.next = r
	w.preload()
}
