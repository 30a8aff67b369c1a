package compute

import "testing"

func TestBlockSizeFor(t *testing.T) {
	saved := L1DataCache
	defer func() { L1DataCache = saved }()
	L1DataCache = 32 * 1024

	tests := []struct {
		name    string
		r, c, f int
		want    int
	}{
		{"3x3 uses the unrolled height", 8, 512, 3, 4},
		{"3x3 with R not a multiple of 4", 6, 16, 3, 2},
		{"5x5 largest divisor", 16, 16, 5, 8},
		{"5x5 R=6", 6, 16, 5, 2},
		{"prime R", 7, 16, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockSizeFor(tt.r, tt.c, tt.f); got != tt.want {
				t.Errorf("BlockSizeFor(%d, %d, %d) = %d, want %d", tt.r, tt.c, tt.f, got, tt.want)
			}
		})
	}
}

func TestBlockSizeForRespectsCacheBudget(t *testing.T) {
	saved := L1DataCache
	defer func() { L1DataCache = saved }()

	// WorkingSet(b, 16, 5) is 2944, 1792, 1216 and 928 bytes for b = 8, 4, 2, 1.
	L1DataCache = 6 * 1024
	if got := BlockSizeFor(8, 16, 5); got != 8 {
		t.Errorf("budget 3072: got %d, want 8", got)
	}
	L1DataCache = 4 * 1024
	if got := BlockSizeFor(8, 16, 5); got != 4 {
		t.Errorf("budget 2048: got %d, want 4", got)
	}
	L1DataCache = 3 * 1024
	if got := BlockSizeFor(8, 16, 5); got != 2 {
		t.Errorf("budget 1536: got %d, want 2", got)
	}
	L1DataCache = 256
	if got := BlockSizeFor(8, 16, 5); got != 1 {
		t.Errorf("tiny budget: got %d, want 1", got)
	}
}

func TestWorkingSet(t *testing.T) {
	if got, want := WorkingSet(4, 10, 3), (6*12+4*10)*8; got != want {
		t.Errorf("WorkingSet(4, 10, 3) = %d, want %d", got, want)
	}
}
