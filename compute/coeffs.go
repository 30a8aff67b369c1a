package compute

// coeffStream walks a row-major F×F filter one column at a time.
// nextColumn yields filter[r][j] for r = 0..F-1, then moves to column j+1.
type coeffStream struct {
	filter []float64
	f      int
	col    int
	buf    []float64
}

func newCoeffStream(filter []float64, f int) *coeffStream {
	return &coeffStream{
		filter: filter[:f*f],
		f:      f,
		buf:    make([]float64, f),
	}
}

// rewind restarts the stream at column 0. The driver rewinds once per tile.
func (s *coeffStream) rewind() {
	s.col = 0
}

// nextColumn returns the coefficients of the current column. The returned
// slice is reused by the next call.
func (s *coeffStream) nextColumn() []float64 {
	j := s.col
	for r := 0; r < s.f; r++ {
		s.buf[r] = s.filter[r*s.f+j]
	}
	s.col++
	return s.buf
}
