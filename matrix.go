package fconv2d

import (
	"fmt"
	"unsafe"
)

// Matrix is a dense row-major float64 matrix.
//
// Element (i, j) lives at Data[i*Stride+j]. The kernels require Stride ==
// Cols; Conv2D rejects anything else.
type Matrix struct {
	Rows   int
	Cols   int
	Stride int
	Data   []float64
}

// NewMatrix allocates a zeroed rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

// NewMatrixFrom wraps data as a rows×cols matrix without copying.
func NewMatrixFrom(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, NewInvalidArgError("NewMatrixFrom",
			fmt.Sprintf("negative dimensions %dx%d", rows, cols), nil)
	}
	if len(data) < rows*cols {
		return nil, NewShapeError("NewMatrixFrom",
			fmt.Sprintf("%d elements for a %dx%d matrix", len(data), rows, cols),
			ErrShortData, DimsContext{R: rows, C: cols})
	}
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   data[:rows*cols],
	}, nil
}

// Row returns row i, limited to Cols elements.
func (m *Matrix) Row(i int) []float64 {
	start := i * m.Stride
	return m.Data[start : start+m.Cols]
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Stride+j]
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Stride+j] = v
}

// Fill sets every element to v.
func (m *Matrix) Fill(v float64) {
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = v
		}
	}
}

// Clone returns a densely packed deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		copy(c.Row(i), m.Row(i))
	}
	return c
}

// dense returns the backing slice of a densely packed matrix.
func (m *Matrix) dense() []float64 {
	return m.Data[:m.Rows*m.Cols]
}

// span returns the part of Data the matrix's rows cover.
func (m *Matrix) span() []float64 {
	n := m.Rows * m.Stride
	if n > len(m.Data) || n < 0 {
		n = len(m.Data)
	}
	return m.Data[:n]
}

// check validates that m is non-nil, densely packed and fully backed.
func (m *Matrix) check(op, name string) error {
	if m == nil {
		return NewInvalidArgError(op, name+" is nil", ErrNilMatrix)
	}
	if m.Rows < 0 || m.Cols < 0 {
		return NewInvalidArgError(op,
			fmt.Sprintf("%s has negative dimensions %dx%d", name, m.Rows, m.Cols), nil)
	}
	if m.Stride != m.Cols {
		return NewShapeError(op,
			fmt.Sprintf("%s stride %d, cols %d", name, m.Stride, m.Cols),
			ErrBadStride, DimsContext{R: m.Rows, C: m.Cols})
	}
	if len(m.Data) < m.Rows*m.Cols {
		return NewShapeError(op,
			fmt.Sprintf("%s has %d elements, needs %d", name, len(m.Data), m.Rows*m.Cols),
			ErrShortData, DimsContext{R: m.Rows, C: m.Cols})
	}
	return nil
}

// Pad returns src surrounded by zeros so that an f×f filter produces an
// output of src's size: (f-1)/2 rows and columns before, the rest after.
func Pad(src *Matrix, f int) *Matrix {
	before := (f - 1) / 2
	dst := NewMatrix(src.Rows+f-1, src.Cols+f-1)
	for i := 0; i < src.Rows; i++ {
		copy(dst.Row(i + before)[before:], src.Row(i))
	}
	return dst
}

// overlaps reports whether two slices share any element.
func overlaps(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float64(0))
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}
