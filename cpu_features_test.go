package fconv2d

import (
	"runtime"
	"strings"
	"testing"

	"github.com/LynnColeArt/fconv2d/compute"
)

func TestCPUFeatures(t *testing.T) {
	f := GetCPUFeatures()
	t.Logf("CPU: %s", GetCPUInfo())

	if f.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", f.Arch, runtime.GOARCH)
	}
	if f.HasFMA != compute.HasFMA {
		t.Errorf("HasFMA = %v, compute.HasFMA = %v", f.HasFMA, compute.HasFMA)
	}
	if f.L1DCache <= 0 || f.CacheLine <= 0 {
		t.Errorf("cache sizes L1d=%d line=%d", f.L1DCache, f.CacheLine)
	}
	if !strings.Contains(GetCPUInfo(), compute.DefaultMode().String()) {
		t.Errorf("GetCPUInfo() omits the default mode")
	}
}
