// Package fconv2d configuration constants
package fconv2d

import "github.com/LynnColeArt/fconv2d/compute"

// Filter sizes
const (
	// MaxFilterSize is the largest supported filter edge
	MaxFilterSize = 7

	// Filter3x3 is the size served by the unrolled kernel
	Filter3x3 = 3
)

// Tile parameters
const (
	// DefaultBlockSize is the output rows per tile of the 3x3 kernel
	DefaultBlockSize = compute.Block3x3

	// MaxBlockSize bounds ConvParams.BlockSize
	MaxBlockSize = 64
)

// Numerical constants
const (
	// Float64Epsilon is the machine epsilon for float64
	Float64Epsilon = 2.220446049250313e-16

	// ConvRelTol is the relative tolerance for convolution results against
	// the naive reference
	ConvRelTol = 1e-9

	// ConvAbsTol covers outputs that cancel to nearly zero
	ConvAbsTol = 1e-12
)

// Batch execution
const (
	// DefaultBatchWorkers selects runtime.NumCPU() workers
	DefaultBatchWorkers = 0
)

// SupportedFilterSize reports whether Conv2D accepts an f×f filter.
// Supported sizes are odd so that "same" padding is symmetric.
func SupportedFilterSize(f int) bool {
	return f >= 1 && f <= MaxFilterSize && f%2 == 1
}
