package compute

import (
	"github.com/klauspost/cpuid"
)

// Cache geometry used to size tiles. Values fall back to common x86 sizes
// when the CPU does not report them.
var (
	L1DataCache = 32 * 1024
	CacheLine   = 64
)

func init() {
	if cpuid.CPU.Cache.L1D > 0 {
		L1DataCache = cpuid.CPU.Cache.L1D
	}
	if cpuid.CPU.CacheLine > 0 {
		CacheLine = cpuid.CPU.CacheLine
	}
}

// blockCandidates are the tile heights BlockSizeFor chooses from, largest first.
var blockCandidates = []int{8, 4, 2, 1}

// WorkingSet returns the bytes touched per tile: the resident rows plus the
// accumulators.
func WorkingSet(block, c, f int) int {
	return ((block+f-1)*(c+f-1) + block*c) * 8
}

// BlockSizeFor picks a tile height for an R×C output and an F×F filter.
// It returns the largest candidate that divides R and whose working set fits
// in half of the L1 data cache, and Block3x3 for 3x3 filters whenever R
// allows it.
func BlockSizeFor(r, c, f int) int {
	if f == 3 && r%Block3x3 == 0 {
		return Block3x3
	}
	budget := L1DataCache / 2
	for _, b := range blockCandidates {
		if r%b != 0 {
			continue
		}
		if WorkingSet(b, c, f) <= budget {
			return b
		}
	}
	return 1
}
