// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fconv2d provides direct 2D convolution of float64 matrices with
// small square filters.
//
// The heavy lifting is done by the blocked kernels in the compute package,
// which keep a sliding window of input rows resident and reuse every loaded
// row across several output rows and all filter columns. This package is the
// validating front door around them:
//   - Matrix and Pad build the padded input the kernels expect
//   - Conv2D checks shapes, aliasing and tile divisibility, then dispatches
//     to the kernel instance for the filter size
//   - Conv2DBatch runs independent convolutions on a worker pool
//   - Reference and the tolerance helpers verify results
//
// Example:
//
//	src := fconv2d.NewMatrix(64, 64)
//	filter, _ := fconv2d.NewMatrixFrom(3, 3, []float64{0, 1, 0, 1, -4, 1, 0, 1, 0})
//	out, err := fconv2d.Conv2DSame(src, filter, nil)
package fconv2d
