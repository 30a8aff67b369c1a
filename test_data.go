package fconv2d

// GenerateFloat64 generates deterministic float64 test data in [0, 1) using a
// 64-bit linear congruential generator. This ensures reproducible tests
// across runs and platforms.
//
// Example:
//
//	data := GenerateFloat64(1024, 12345)
func GenerateFloat64(size int, seed uint64) []float64 {
	data := make([]float64, size)
	rng := seed
	for i := range data {
		rng = rng*6364136223846793005 + 1442695040888963407 // Knuth's MMIX constants
		data[i] = float64(rng>>11) / (1 << 53)
	}
	return data
}

// GenerateFloat64Range generates deterministic float64 data in [min, max).
//
// Example:
//
//	data := GenerateFloat64Range(1024, 42, -1.0, 1.0)
func GenerateFloat64Range(size int, seed uint64, min, max float64) []float64 {
	data := GenerateFloat64(size, seed)
	scale := max - min
	for i := range data {
		data[i] = data[i]*scale + min
	}
	return data
}

// GenerateMatrix generates a deterministic rows×cols matrix with elements in
// [-1, 1).
func GenerateMatrix(rows, cols int, seed uint64) *Matrix {
	m, _ := NewMatrixFrom(rows, cols, GenerateFloat64Range(rows*cols, seed, -1, 1))
	return m
}

// GenerateSequence generates an arithmetic sequence for debugging.
//
// Example:
//
//	data := GenerateSequence(5, 1, 1) // [1, 2, 3, 4, 5]
func GenerateSequence(size int, start, step float64) []float64 {
	data := make([]float64, size)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return data
}

// IdentityFilter returns the f×f filter that is zero except for 1 at the
// center. Convolving with it reproduces the interior of the input.
func IdentityFilter(f int) *Matrix {
	m := NewMatrix(f, f)
	m.Set(f/2, f/2, 1)
	return m
}

// ConvTestShapes returns {R, C, F} triples covering single tiles, many
// tiles, narrow rows and every supported filter size. Every R is a multiple
// of 8.
func ConvTestShapes() [][3]int {
	return [][3]int{
		{8, 8, 3},    // Two 3x3 tiles
		{64, 64, 3},  // Square
		{16, 1, 3},   // Single column
		{8, 257, 3},  // Row longer than the unroll width
		{32, 31, 1},  // 1x1 filter
		{24, 40, 5},  // 5x5
		{16, 100, 7}, // 7x7
		{128, 16, 5}, // Tall
	}
}
