package fconv2d

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid"
	"golang.org/x/sys/cpu"

	"github.com/LynnColeArt/fconv2d/compute"
)

// CPUFeatures tracks the CPU properties the kernels care about
type CPUFeatures struct {
	Arch      string
	Brand     string
	HasFMA    bool
	HasAVX2   bool
	HasAVX512 bool
	HasASIMD  bool // arm64 Advanced SIMD
	L1DCache  int  // bytes
	L2Cache   int  // bytes
	CacheLine int  // bytes
	Cores     int
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		Arch:      runtime.GOARCH,
		Brand:     strings.TrimSpace(cpuid.CPU.BrandName),
		HasFMA:    compute.HasFMA,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasASIMD:  cpu.ARM64.HasASIMD,
		L1DCache:  compute.L1DataCache,
		L2Cache:   cpuid.CPU.Cache.L2,
		CacheLine: compute.CacheLine,
		Cores:     cpuid.CPU.PhysicalCores,
	}
}

// GetCPUFeatures returns the detected CPU features
func GetCPUFeatures() CPUFeatures {
	return cpuFeatures
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	var features []string
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasAVX512 {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasASIMD {
		features = append(features, "ASIMD")
	}

	brand := cpuFeatures.Brand
	if brand == "" {
		brand = "unknown CPU"
	}
	feat := "no SIMD extensions detected"
	if len(features) > 0 {
		feat = "CPU features: " + strings.Join(features, ", ")
	}
	return fmt.Sprintf("%s (%s), %s; L1d %d KiB, cache line %d B; default mode %v",
		brand, cpuFeatures.Arch, feat,
		cpuFeatures.L1DCache/1024, cpuFeatures.CacheLine, compute.DefaultMode())
}
