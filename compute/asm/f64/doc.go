// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f64 provides the float64 vector primitives used by the
// convolution kernels: a scalar-broadcast multiply and two flavours of
// scalar-broadcast multiply-accumulate.
//
// All routines operate on unit-stride slices and process len(dst) (or len(y))
// lanes. The loops are unrolled by four so the compiler can keep four
// independent lanes in flight; each lane performs exactly the same sequence
// of floating-point operations regardless of unrolling, so results never
// depend on the slice length or alignment.
package f64
