package compute

// shiftRow returns row shifted left by k columns, truncated to the n lanes an
// accumulator consumes. It is a view: no element is copied, and reading lane
// i yields row[k+i].
//
// For a row of width C+F-1 and k < F the view always fits, so every filter
// column tap reads the same resident row instead of fetching the input again
// at a different offset.
func shiftRow(row []float64, k, n int) []float64 {
	return row[k : k+n : k+n]
}
