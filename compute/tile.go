package compute

import (
	"github.com/LynnColeArt/fconv2d/compute/asm/f64"
)

// tileFunc computes rows accumulators of length c from the resident window.
type tileFunc func(acc [][]float64, w *rowWindow, cs *coeffStream, rows, c, f int, mac macFunc)

// newAccumulators allocates one output-row accumulator per tile row.
func newAccumulators(rows, c int) [][]float64 {
	backing := make([]float64, rows*c)
	acc := make([][]float64, rows)
	for p := range acc {
		acc[p] = backing[p*c : (p+1)*c : (p+1)*c]
	}
	return acc
}

// computeTile is the generic tile engine.
//
// Accumulator p receives filter[fr][fc] * shift(row(p+fr), fc) for every tap,
// filter columns outer and filter rows inner. The first tap of each
// accumulator is a multiply, which also clears whatever the previous tile
// left behind.
func computeTile(acc [][]float64, w *rowWindow, cs *coeffStream, rows, c, f int, mac macFunc) {
	cs.rewind()
	for fc := 0; fc < f; fc++ {
		col := cs.nextColumn()
		for p := 0; p < rows; p++ {
			o := acc[p][:c]
			fr := 0
			if fc == 0 {
				f64.ScalUnitaryTo(o, col[0], w.row(p))
				fr = 1
			}
			for ; fr < f; fr++ {
				mac(col[fr], shiftRow(w.row(p+fr), fc, c), o)
			}
		}
	}
}

// storeTile writes the accumulators to consecutive output rows of width c.
func storeTile(out []float64, acc [][]float64, rows, c int) {
	for p := 0; p < rows; p++ {
		copy(out[p*c:(p+1)*c], acc[p][:c])
	}
}
