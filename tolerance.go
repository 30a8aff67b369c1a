// Package fconv2d tolerance-based verification for floating-point comparisons
package fconv2d

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int64

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance returns the tolerance used to compare a kernel against
// the naive reference
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   ConvAbsTol,
		RelTol:   ConvRelTol,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// ConvTolerance returns DefaultTolerance with the ULP budget scaled by the
// number of taps that accumulate into each output of an f×f filter.
func ConvTolerance(f int) ToleranceConfig {
	tol := DefaultTolerance()
	if taps := int64(f) * int64(f); taps > 1 {
		tol.ULPTol *= taps
	}
	return tol
}

// ExactTolerance accepts bit-identical values only (and ±0)
func ExactTolerance() ToleranceConfig {
	return ToleranceConfig{
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true
		}
	}

	// Exact equality, including +0 == -0
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && Float64ULPDiff(a, b) <= tol.ULPTol {
		return true
	}

	return false
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int64 {
	if a == b {
		return 0
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxInt64
	}

	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	// Different signs: not comparable by subtraction
	if (aBits^bBits)&(1<<63) != 0 {
		return math.MaxInt64
	}

	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// VerificationResult summarizes the comparison of two arrays
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat64Array compares two float64 arrays and returns detailed results
func VerifyFloat64Array(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		result.FirstError = 0
		return result
	}

	for i := range expected {
		if Float64NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := math.Abs(expected[i] - actual[i])
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}

		if expected[i] != 0 {
			relDiff := absDiff / math.Abs(expected[i])
			if relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}

		ulpDiff := Float64ULPDiff(expected[i], actual[i])
		if ulpDiff > result.MaxULPError {
			result.MaxULPError = ulpDiff
		}
	}

	return result
}

// Passed reports whether every element matched
func (r VerificationResult) Passed() bool {
	return r.NumErrors == 0
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return fmt.Sprintf("PASS: all %d values match within tolerance", r.TotalItems)
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}

// ConvVerifier runs Conv2D next to the reference implementation
type ConvVerifier struct {
	Name      string
	Params    *ConvParams
	Tolerance ToleranceConfig
}

// Verify convolves input with filter both ways and compares the outputs.
// The output height is taken from input and filter.
func (cv ConvVerifier) Verify(input, filter *Matrix) (VerificationResult, error) {
	if err := input.check("Verify", "input"); err != nil {
		return VerificationResult{}, err
	}
	if err := filter.check("Verify", "filter"); err != nil {
		return VerificationResult{}, err
	}
	f := filter.Rows
	r, c := input.Rows-f+1, input.Cols-f+1
	if r < 0 || c < 0 {
		return VerificationResult{}, NewShapeError("Verify",
			fmt.Sprintf("input %dx%d smaller than filter %dx%d", input.Rows, input.Cols, f, f),
			ErrShapeMismatch, DimsContext{F: f})
	}

	actual := NewMatrix(r, c)
	if err := Conv2D(input, filter, actual, cv.Params); err != nil {
		return VerificationResult{}, err
	}

	expected := make([]float64, r*c)
	Reference{}.Conv2D(expected, input.dense(), filter.dense(), r, c, f)

	return VerifyFloat64Array(expected, actual.dense(), cv.Tolerance), nil
}
