package fconv2d

import (
	"errors"
	"testing"
)

func TestNewMatrixFrom(t *testing.T) {
	data := GenerateSequence(12, 0, 1)

	m, err := NewMatrixFrom(3, 4, data)
	if err != nil {
		t.Fatal(err)
	}
	if m.At(2, 1) != 9 {
		t.Errorf("At(2, 1) = %v, want 9", m.At(2, 1))
	}

	// Shares storage with data
	m.Set(0, 0, 42)
	if data[0] != 42 {
		t.Error("NewMatrixFrom copied its data")
	}

	if _, err := NewMatrixFrom(4, 4, data); !errors.Is(err, ErrShortData) {
		t.Errorf("short data: got %v", err)
	}
	if _, err := NewMatrixFrom(-1, 4, data); !IsInvalidArgError(err) {
		t.Errorf("negative rows: got %v", err)
	}

	// Extra elements are trimmed
	m, err = NewMatrixFrom(2, 5, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Data) != 10 {
		t.Errorf("len(Data) = %d, want 10", len(m.Data))
	}
}

func TestMatrixRowFillClone(t *testing.T) {
	m := NewMatrix(3, 2)
	m.Fill(1.5)
	for i, v := range m.Data {
		if v != 1.5 {
			t.Fatalf("Data[%d] = %v after Fill", i, v)
		}
	}

	m.Row(1)[1] = 7
	if m.At(1, 1) != 7 {
		t.Errorf("Row does not alias Data")
	}

	c := m.Clone()
	c.Set(1, 1, 0)
	if m.At(1, 1) != 7 {
		t.Errorf("Clone shares storage")
	}
}

func TestPad(t *testing.T) {
	src, _ := NewMatrixFrom(2, 3, GenerateSequence(6, 1, 1))

	tests := []struct {
		f    int
		want []float64
	}{
		{1, []float64{1, 2, 3, 4, 5, 6}},
		{3, []float64{
			0, 0, 0, 0, 0,
			0, 1, 2, 3, 0,
			0, 4, 5, 6, 0,
			0, 0, 0, 0, 0,
		}},
	}

	for _, tt := range tests {
		p := Pad(src, tt.f)
		if p.Rows != src.Rows+tt.f-1 || p.Cols != src.Cols+tt.f-1 {
			t.Fatalf("F=%d: padded to %dx%d", tt.f, p.Rows, p.Cols)
		}
		for i, want := range tt.want {
			if p.Data[i] != want {
				t.Errorf("F=%d: Data[%d] = %v, want %v", tt.f, i, p.Data[i], want)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]float64, 10)
	other := make([]float64, 10)

	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"same", buf, buf, true},
		{"disjoint halves", buf[:5], buf[5:], false},
		{"one shared element", buf[:6], buf[5:], true},
		{"contained", buf, buf[3:4], true},
		{"separate arrays", buf, other, false},
		{"empty", buf[:0], buf, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("overlaps = %v, want %v", got, tt.want)
			}
			if got := overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
