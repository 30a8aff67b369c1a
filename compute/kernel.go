package compute

import (
	"fmt"
)

// DefaultBlock is the tile height used by Convolve.
const DefaultBlock = Block3x3

// Kernel is one instance of the blocked direct convolution for a fixed
// filter size and tile height.
//
// A Kernel holds no per-call state and may be shared between goroutines.
type Kernel struct {
	F     int
	Block int
	Mode  Mode
	Name  string

	tile tileFunc

	// reload makes every tile load all of its rows from the input instead
	// of carrying F-1 rows over from the previous tile.
	reload bool
}

// NewKernel returns the generic blocked kernel for an F×F filter computing
// block output rows per tile.
func NewKernel(f, block int, mode Mode) *Kernel {
	if f < 1 || block < 1 {
		panic(fmt.Sprintf("compute: invalid kernel shape F=%d block=%d", f, block))
	}
	return &Kernel{
		F:     f,
		Block: block,
		Mode:  mode.Resolve(),
		Name:  fmt.Sprintf("fconv2d_%dx%d_b%d", f, f, block),
		tile:  computeTile,
	}
}

// Kernel3x3 returns the unrolled 3x3 kernel, four output rows per tile.
func Kernel3x3(mode Mode) *Kernel {
	return &Kernel{
		F:     3,
		Block: Block3x3,
		Mode:  mode.Resolve(),
		Name:  "fconv2d_3x3",
		tile:  tile3x3,
	}
}

// KernelFor returns the best kernel instance for an F×F filter and the
// requested tile height.
func KernelFor(f, block int, mode Mode) *Kernel {
	if f == 3 && block == Block3x3 {
		return Kernel3x3(mode)
	}
	return NewKernel(f, block, mode)
}

// Convolve computes the R×C output o of the F×F filter f over the padded
// input i.
//
// i holds R+F-1 rows of C+F-1 elements, f holds F×F coefficients and o
// receives R rows of C elements, all row-major and densely packed. R must be
// a multiple of DefaultBlock and o must not overlap i or f.
func Convolve(o, i, f []float64, r, c, fsize int) {
	KernelFor(fsize, DefaultBlock, Auto).Convolve(o, i, f, r, c)
}

// Convolve runs the kernel over an R×C output. R must be a multiple of
// k.Block; see ConvolveTail for other heights.
func (k *Kernel) Convolve(o, i, f []float64, r, c int) {
	if r%k.Block != 0 {
		panic(fmt.Sprintf("compute: %s: R=%d is not a multiple of %d", k.Name, r, k.Block))
	}
	k.run(o, i, f, r, c)
}

// ConvolveTail is Convolve without the multiple-of-block requirement. The
// last R%k.Block rows are computed as one shorter tile that still reuses the
// rows carried over from the preceding tile.
func (k *Kernel) ConvolveTail(o, i, f []float64, r, c int) {
	k.run(o, i, f, r, c)
}

// run drives the tiles and returns the number of input rows it loaded.
func (k *Kernel) run(o, in, filter []float64, r, c int) int {
	if r <= 0 || c <= 0 {
		return 0
	}
	fs, block := k.F, k.Block
	stride := c + fs - 1

	w := newRowWindow(in, stride, block, fs)
	cs := newCoeffStream(filter, fs)
	acc := newAccumulators(block, c)
	mac := k.Mode.mac()

	// The first tile has nothing to inherit: load its first F-1 rows up
	// front so every tile, including this one, only loads block new rows.
	w.preload()

	full := r - r%block
	for row := 0; row < full; row += block {
		if k.reload && row > 0 {
			w.seek(row)
		}
		w.loadNext(block)
		k.tile(acc, w, cs, block, c, fs, mac)
		storeTile(o[row*c:], acc, block, c)
		w.retainTrailing(block)
	}

	if rem := r - full; rem > 0 {
		if k.reload && full > 0 {
			w.seek(full)
		}
		w.loadNext(rem)
		k.tile(acc, w, cs, rem, c, fs, mac)
		storeTile(o[full*c:], acc, rem, c)
		w.retainTrailing(rem)
	}
	return w.loads
}
