package fconv2d

import (
	"fmt"

	"github.com/LynnColeArt/fconv2d/compute"
)

// ConvParams tunes a convolution. The zero value picks everything
// automatically.
type ConvParams struct {
	// BlockSize is the number of output rows computed per tile. Zero lets
	// compute.BlockSizeFor choose from the filter size and L1 cache size.
	BlockSize int

	// Mode selects fused (compute.Fused) or separately rounded
	// (compute.Separate) accumulation. compute.Auto follows the CPU.
	Mode compute.Mode

	// AllowRowTail accepts output heights that are not a multiple of
	// BlockSize. The remaining rows are computed as one shorter tile.
	AllowRowTail bool
}

// Validate checks if convolution parameters are valid
func (p *ConvParams) Validate() error {
	if p.BlockSize < 0 || p.BlockSize > MaxBlockSize {
		return NewInvalidArgError("ConvParams",
			fmt.Sprintf("block size %d outside [0, %d]", p.BlockSize, MaxBlockSize), nil)
	}
	switch p.Mode {
	case compute.Auto, compute.Fused, compute.Separate:
	default:
		return NewInvalidArgError("ConvParams", fmt.Sprintf("unknown mode %v", p.Mode), nil)
	}
	return nil
}

// blockFor returns the tile height for an R×C output and F×F filter.
func (p *ConvParams) blockFor(r, c, f int) int {
	if p.BlockSize > 0 {
		return p.BlockSize
	}
	return compute.BlockSizeFor(r, c, f)
}

// Conv2D computes output = input ⋆ filter (cross-correlation, no flip).
//
// For an F×F filter and an R×C output, input must be (R+F-1)×(C+F-1), already
// padded. All three matrices must be densely packed and output must not
// overlap input or filter. Every violation is reported as an *FconvError
// before any element of output is written.
func Conv2D(input, filter, output *Matrix, params *ConvParams) error {
	const op = "Conv2D"

	if params == nil {
		params = &ConvParams{}
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := input.check(op, "input"); err != nil {
		return err
	}
	if err := filter.check(op, "filter"); err != nil {
		return err
	}
	if err := output.check(op, "output"); err != nil {
		return err
	}

	f := filter.Rows
	if filter.Cols != f {
		return NewShapeError(op,
			fmt.Sprintf("filter is %dx%d, must be square", filter.Rows, filter.Cols),
			ErrShapeMismatch, DimsContext{F: f})
	}
	if !SupportedFilterSize(f) {
		return NewUnsupportedError(op,
			fmt.Sprintf("no kernel for a %dx%d filter", f, f), ErrUnsupportedFilter)
	}

	r, c := output.Rows, output.Cols
	if input.Rows != r+f-1 || input.Cols != c+f-1 {
		return NewShapeError(op,
			fmt.Sprintf("input is %dx%d, want %dx%d", input.Rows, input.Cols, r+f-1, c+f-1),
			ErrShapeMismatch, DimsContext{R: r, C: c, F: f})
	}

	out := output.dense()
	if overlaps(out, input.dense()) {
		return NewAliasError(op, "output overlaps input")
	}
	if overlaps(out, filter.dense()) {
		return NewAliasError(op, "output overlaps filter")
	}

	block := params.blockFor(r, c, f)
	tail := r%block != 0
	if tail && !params.AllowRowTail {
		return NewShapeError(op,
			fmt.Sprintf("R=%d with block size %d", r, block),
			ErrRowRemainder, DimsContext{R: r, C: c, F: f, BlockSize: block})
	}

	k := compute.KernelFor(f, block, params.Mode)
	if tail {
		k.ConvolveTail(out, input.dense(), filter.dense(), r, c)
	} else {
		k.Convolve(out, input.dense(), filter.dense(), r, c)
	}
	return nil
}

// Conv2DSame zero-pads src and convolves it with filter, returning an output
// the size of src.
func Conv2DSame(src, filter *Matrix, params *ConvParams) (*Matrix, error) {
	const op = "Conv2DSame"

	if err := src.check(op, "src"); err != nil {
		return nil, err
	}
	if err := filter.check(op, "filter"); err != nil {
		return nil, err
	}
	if filter.Rows != filter.Cols || !SupportedFilterSize(filter.Rows) {
		return nil, NewUnsupportedError(op,
			fmt.Sprintf("no kernel for a %dx%d filter", filter.Rows, filter.Cols), ErrUnsupportedFilter)
	}

	out := NewMatrix(src.Rows, src.Cols)
	if err := Conv2D(Pad(src, filter.Rows), filter, out, params); err != nil {
		return nil, err
	}
	return out, nil
}
