// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f64

import "math"

// ScalUnitaryTo computes dst[i] = alpha * x[i] for i < len(dst).
// x must be at least as long as dst.
func ScalUnitaryTo(dst []float64, alpha float64, x []float64) {
	x = x[:len(dst)]
	n := len(dst) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i] = alpha * x[i]
		dst[i+1] = alpha * x[i+1]
		dst[i+2] = alpha * x[i+2]
		dst[i+3] = alpha * x[i+3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] = alpha * x[i]
	}
}

// AxpyUnitary computes y[i] += alpha * x[i] for i < len(y), rounding the
// product before the addition.
// x must be at least as long as y.
func AxpyUnitary(alpha float64, x, y []float64) {
	x = x[:len(y)]
	n := len(y) &^ 3
	for i := 0; i < n; i += 4 {
		// The explicit conversions stop the compiler from fusing the
		// multiply into the add on architectures with FMA.
		y[i] += float64(alpha * x[i])
		y[i+1] += float64(alpha * x[i+1])
		y[i+2] += float64(alpha * x[i+2])
		y[i+3] += float64(alpha * x[i+3])
	}
	for i := n; i < len(y); i++ {
		y[i] += float64(alpha * x[i])
	}
}

// FmaUnitary computes y[i] = alpha*x[i] + y[i] for i < len(y) with a single
// rounding per lane.
// x must be at least as long as y.
func FmaUnitary(alpha float64, x, y []float64) {
	x = x[:len(y)]
	n := len(y) &^ 3
	for i := 0; i < n; i += 4 {
		y[i] = math.FMA(alpha, x[i], y[i])
		y[i+1] = math.FMA(alpha, x[i+1], y[i+1])
		y[i+2] = math.FMA(alpha, x[i+2], y[i+2])
		y[i+3] = math.FMA(alpha, x[i+3], y[i+3])
	}
	for i := n; i < len(y); i++ {
		y[i] = math.FMA(alpha, x[i], y[i])
	}
}
