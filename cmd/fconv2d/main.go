// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fconv2d convolves a generated input with a generated filter and
// checks the result against the naive reference.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/LynnColeArt/fconv2d"
	"github.com/LynnColeArt/fconv2d/compute"
)

func main() {
	var (
		rows  = flag.Int("rows", 64, "Output rows (R)")
		cols  = flag.Int("cols", 64, "Output columns (C)")
		fsize = flag.Int("filter", fconv2d.Filter3x3, "Filter size (odd, at most 7)")
		block = flag.Int("block", 0, "Output rows per tile, 0 for automatic")
		mode  = flag.String("mode", "auto", "Accumulation mode: auto, fused or separate")
		seed  = flag.Uint64("seed", 1, "Seed for the generated input and filter")
		tail  = flag.Bool("tail", false, "Allow an output height that is not a multiple of the tile height")
		exact = flag.Bool("exact", false, "Require bit-identical results")
		info  = flag.Bool("info", false, "Print CPU information and exit")
	)
	flag.Parse()

	if *info {
		printInfo()
		return
	}

	m, err := compute.ParseMode(*mode)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}
	if *rows < 0 || *cols < 0 {
		log.Fatalf("Invalid output size %dx%d", *rows, *cols)
	}
	if *fsize < 1 {
		log.Fatalf("Invalid filter size %d", *fsize)
	}

	params := &fconv2d.ConvParams{
		BlockSize:    *block,
		Mode:         m,
		AllowRowTail: *tail,
	}
	f := *fsize
	tol := fconv2d.ConvTolerance(f)
	if *exact {
		tol = fconv2d.ExactTolerance()
	}

	input := fconv2d.GenerateMatrix(*rows+f-1, *cols+f-1, *seed)
	filter := fconv2d.GenerateMatrix(f, f, *seed+1)

	verifier := fconv2d.ConvVerifier{
		Name:      fmt.Sprintf("conv%dx%d", f, f),
		Params:    params,
		Tolerance: tol,
	}
	result, err := verifier.Verify(input, filter)
	if err != nil {
		log.Fatalf("Convolution failed: %v", err)
	}

	title := cases.Title(language.English)
	fmt.Printf("%-8s %s\n", "Kernel:", verifier.Name)
	fmt.Printf("%-8s %dx%d output, %dx%d input\n", "Shape:", *rows, *cols, input.Rows, input.Cols)
	fmt.Printf("%-8s %s\n", "Mode:", title.String(m.Resolve().String()))
	fmt.Println(result)

	if !result.Passed() {
		os.Exit(1)
	}
}

func printInfo() {
	version, sum := fconv2d.Version()
	if version == "" {
		version = "(devel)"
	}
	feat := fconv2d.GetCPUFeatures()
	title := cases.Title(language.English)

	fmt.Printf("fconv2d %s %s\n", version, sum)
	fmt.Println(fconv2d.GetCPUInfo())
	fmt.Printf("L2 cache: %d KiB, physical cores: %d\n", feat.L2Cache/1024, feat.Cores)
	fmt.Printf("Default mode: %s\n", title.String(compute.DefaultMode().String()))
	for _, f := range []int{1, 3, 5, 7} {
		k := compute.KernelFor(f, compute.BlockSizeFor(64, 64, f), compute.Auto)
		fmt.Printf("  %dx%d filter, 64x64 output: %s\n", f, f, k.Name)
	}
}
