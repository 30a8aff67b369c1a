package compute

import "testing"

func TestCoeffStreamColumnMajor(t *testing.T) {
	filter := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}

	cs := newCoeffStream(filter, 3)
	for pass := 0; pass < 2; pass++ {
		cs.rewind()
		for j, col := range want {
			got := cs.nextColumn()
			for r := range col {
				if got[r] != col[r] {
					t.Errorf("pass %d column %d row %d = %v, want %v", pass, j, r, got[r], col[r])
				}
			}
		}
	}
}
