package compute

import (
	"golang.org/x/sys/cpu"
)

// HasFMA reports whether the CPU executes fused multiply-add in hardware.
// Without it math.FMA falls back to a slow software path, so the default
// mode switches to separately rounded multiply-adds.
var HasFMA bool

// InitCPUFeatures detects CPU features and picks the default accumulation mode.
func InitCPUFeatures() {
	HasFMA = cpu.X86.HasFMA || cpu.ARM64.HasASIMD || cpu.S390X.HasVX
	if HasFMA {
		defaultMode = Fused
	} else {
		defaultMode = Separate
	}
}

// init ensures CPU features are detected at package load time
func init() {
	InitCPUFeatures()
}
