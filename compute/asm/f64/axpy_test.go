package f64

import (
	"math"
	"testing"
)

func TestScalUnitaryTo(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 8, 13} {
		x := make([]float64, n+2)
		for i := range x {
			x[i] = float64(i) - 1.5
		}
		dst := make([]float64, n)
		ScalUnitaryTo(dst, -2, x)
		for i := range dst {
			if want := -2 * x[i]; dst[i] != want {
				t.Errorf("n=%d: dst[%d] = %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestAxpyUnitaryLeavesTailUntouched(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}
	y := []float64{1, 1, 1, 1, 1, 1, 1, 99}
	AxpyUnitary(2, x, y[:7])
	want := []float64{3, 5, 7, 9, 11, 13, 15, 99}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

// a*x + y where a*x is not exactly representable: fused and separately
// rounded results differ.
func TestFusedAndSeparateRounding(t *testing.T) {
	a := 1 + 0x1p-30
	x := 1 + 0x1p-30
	y0 := -(1 + 0x1p-29)

	fused := make([]float64, 5)
	separate := make([]float64, 5)
	xs := make([]float64, 5)
	for i := range xs {
		xs[i] = x
		fused[i] = y0
		separate[i] = y0
	}
	FmaUnitary(a, xs, fused)
	AxpyUnitary(a, xs, separate)

	for i := range xs {
		if want := math.FMA(a, x, y0); fused[i] != want {
			t.Errorf("fused[%d] = %v, want %v", i, fused[i], want)
		}
		if fused[i] != 0x1p-60 {
			t.Errorf("fused[%d] = %v, want 2^-60", i, fused[i])
		}
		if separate[i] != 0 {
			t.Errorf("separate[%d] = %v, want 0", i, separate[i])
		}
	}
}

func BenchmarkFmaUnitary(b *testing.B) {
	x := make([]float64, 1024)
	y := make([]float64, 1024)
	for i := range x {
		x[i] = float64(i)
	}
	b.SetBytes(int64(len(x) * 8 * 2))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FmaUnitary(0.5, x, y)
	}
}
