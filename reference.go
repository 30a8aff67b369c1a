// Package fconv2d reference implementations for verification
package fconv2d

// Reference contains simple, correct implementations of the kernels.
// These are used for testing and verification of the blocked implementations.
type Reference struct{}

// Conv2D computes o[y][x] = Σ f[fr][fc] * i[y+fr][x+fc] with a plain
// triple loop. Shapes follow compute.Convolve: i is (R+F-1)×(C+F-1), f is F×F
// and o is R×C, all densely packed row-major.
func (r Reference) Conv2D(o, i, f []float64, rows, cols, fsize int) {
	stride := cols + fsize - 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sum := 0.0
			for fr := 0; fr < fsize; fr++ {
				for fc := 0; fc < fsize; fc++ {
					sum += f[fr*fsize+fc] * i[(y+fr)*stride+x+fc]
				}
			}
			o[y*cols+x] = sum
		}
	}
}

// Conv2DSame is Conv2D over src zero-padded to produce an output of src's
// size.
func (r Reference) Conv2DSame(src, filter *Matrix) *Matrix {
	out := NewMatrix(src.Rows, src.Cols)
	padded := Pad(src, filter.Rows)
	r.Conv2D(out.Data, padded.Data, filter.Clone().Data, src.Rows, src.Cols, filter.Rows)
	return out
}
