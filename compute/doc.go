// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compute implements the blocked direct 2D convolution kernels.
//
// A kernel computes an R×C output from a padded (R+F-1)×(C+F-1) input and an
// F×F filter. Output rows are produced in tiles of Block rows. For each tile
// the kernel keeps Block+F-1 input rows resident, takes the F-1 rows shared
// with the previous tile over without reloading them, and derives the column
// taps of a row from shifted views of that single resident copy. Filter
// coefficients are broadcast as scalars against whole rows.
//
// The kernels trust their caller: shapes are not validated, and an R that is
// not a multiple of the tile height panics unless ConvolveTail is used. The
// fconv2d package wraps them with validation.
package compute
