package compute

import (
	"fmt"

	"github.com/LynnColeArt/fconv2d/compute/asm/f64"
)

// Mode selects how a tap's product is combined with its accumulator.
type Mode int

const (
	// Auto resolves to the package default chosen at init.
	Auto Mode = iota
	// Fused rounds alpha*x + acc once per tap. This matches vector
	// fused multiply-accumulate hardware bit for bit.
	Fused
	// Separate rounds the product before adding it to the accumulator.
	Separate
)

var defaultMode = Fused

// DefaultMode returns the mode used for Auto on this CPU.
func DefaultMode() Mode {
	return defaultMode
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Fused:
		return "fused"
	case Separate:
		return "separate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "fused":
		return Fused, nil
	case "separate":
		return Separate, nil
	}
	return Auto, fmt.Errorf("unknown accumulation mode %q", s)
}

// Resolve replaces Auto with the package default.
func (m Mode) Resolve() Mode {
	if m == Auto {
		return defaultMode
	}
	return m
}

// macFunc accumulates alpha*x into y lane by lane.
type macFunc func(alpha float64, x, y []float64)

func (m Mode) mac() macFunc {
	if m.Resolve() == Separate {
		return f64.AxpyUnitary
	}
	return f64.FmaUnitary
}
