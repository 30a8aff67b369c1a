package compute

import "testing"

// rowsOf returns n rows of the given width where every element of row y is y.
func rowsOf(n, width int) []float64 {
	src := make([]float64, n*width)
	for y := 0; y < n; y++ {
		for x := 0; x < width; x++ {
			src[y*width+x] = float64(y)
		}
	}
	return src
}

func TestRowWindowCarryOver(t *testing.T) {
	const (
		f     = 3
		block = 4
		width = 5
		tiles = 4
	)
	w := newRowWindow(rowsOf(tiles*block+f-1, width), width, block, f)

	w.preload()
	if w.loads != f-1 {
		t.Fatalf("preload loaded %d rows, want %d", w.loads, f-1)
	}

	var trailing [][]float64
	for tile := 0; tile < tiles; tile++ {
		w.loadNext(block)
		for i := 0; i < block+f-1; i++ {
			if got, want := w.row(i)[0], float64(tile*block+i); got != want {
				t.Errorf("tile %d: logical row %d holds input row %v, want %v", tile, i, got, want)
			}
		}
		// The rows carried into this tile must be the very buffers the
		// previous tile ended with.
		for i, prev := range trailing {
			if &w.row(i)[0] != &prev[0] {
				t.Errorf("tile %d: logical row %d was reloaded instead of carried over", tile, i)
			}
		}
		trailing = trailing[:0]
		for i := block; i < block+f-1; i++ {
			trailing = append(trailing, w.row(i))
		}
		w.retainTrailing(block)
	}

	if want := f - 1 + tiles*block; w.loads != want {
		t.Errorf("loaded %d rows, want %d", w.loads, want)
	}
}

func TestRowWindowSlotTable(t *testing.T) {
	// Physical slot of logical row 0 at the start of each tile, F=3 block=4.
	wantBase := []int{0, 4, 2, 0, 4}
	w := newRowWindow(rowsOf(23, 2), 2, 4, 3)
	w.preload()
	for tile, base := range wantBase {
		if w.base != base {
			t.Errorf("tile %d: base = %d, want %d", tile, w.base, base)
		}
		w.loadNext(4)
		w.retainTrailing(4)
	}
}

func TestRowWindowSeek(t *testing.T) {
	w := newRowWindow(rowsOf(12, 3), 3, 2, 3)
	w.seek(5)
	w.loadNext(2)
	for i := 0; i < 4; i++ {
		if got := w.row(i)[0]; got != float64(5+i) {
			t.Errorf("logical row %d = %v, want %v", i, got, 5+i)
		}
	}
}

func TestRowWindowSingleTapFilter(t *testing.T) {
	w := newRowWindow(rowsOf(8, 4), 4, 4, 1)
	w.preload()
	if w.loads != 0 {
		t.Fatalf("1x1 filter preloaded %d rows", w.loads)
	}
	w.loadNext(4)
	w.retainTrailing(4)
	w.loadNext(4)
	for i := 0; i < 4; i++ {
		if got := w.row(i)[0]; got != float64(4+i) {
			t.Errorf("logical row %d = %v, want %v", i, got, 4+i)
		}
	}
}
