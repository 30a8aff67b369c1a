package compute

import (
	"github.com/LynnColeArt/fconv2d/compute/asm/f64"
)

// Block3x3 is the number of output rows per tile of the 3x3 kernel.
const Block3x3 = 4

// tile3x3 is computeTile unrolled for F=3 and four output rows.
//
// Six resident rows r0..r5 feed four accumulators o0..o3; output row p reads
// rows p, p+1 and p+2. Every accumulator sees its taps in the same order as
// computeTile, so both engines round identically.
func tile3x3(acc [][]float64, w *rowWindow, cs *coeffStream, rows, c, f int, mac macFunc) {
	if rows != Block3x3 || f != 3 {
		computeTile(acc, w, cs, rows, c, f, mac)
		return
	}

	r0, r1, r2 := w.row(0), w.row(1), w.row(2)
	r3, r4, r5 := w.row(3), w.row(4), w.row(5)
	o0, o1, o2, o3 := acc[0][:c], acc[1][:c], acc[2][:c], acc[3][:c]

	cs.rewind()

	// Filter column 0: unshifted rows, first tap multiplies.
	t := cs.nextColumn()
	t0, t1, t2 := t[0], t[1], t[2]

	f64.ScalUnitaryTo(o0, t0, r0)
	mac(t1, r1, o0)
	mac(t2, r2, o0)

	f64.ScalUnitaryTo(o1, t0, r1)
	mac(t1, r2, o1)
	mac(t2, r3, o1)

	f64.ScalUnitaryTo(o2, t0, r2)
	mac(t1, r3, o2)
	mac(t2, r4, o2)

	f64.ScalUnitaryTo(o3, t0, r3)
	mac(t1, r4, o3)
	mac(t2, r5, o3)

	// Filter columns 1 and 2: the same rows slid down by one and two lanes.
	for k := 1; k < 3; k++ {
		t = cs.nextColumn()
		t0, t1, t2 = t[0], t[1], t[2]

		s0, s1, s2 := shiftRow(r0, k, c), shiftRow(r1, k, c), shiftRow(r2, k, c)
		s3, s4, s5 := shiftRow(r3, k, c), shiftRow(r4, k, c), shiftRow(r5, k, c)

		mac(t0, s0, o0)
		mac(t1, s1, o0)
		mac(t2, s2, o0)

		mac(t0, s1, o1)
		mac(t1, s2, o1)
		mac(t2, s3, o1)

		mac(t0, s2, o2)
		mac(t1, s3, o2)
		mac(t2, s4, o2)

		mac(t0, s3, o3)
		mac(t1, s4, o3)
		mac(t2, s5, o3)
	}
}
