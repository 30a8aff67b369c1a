package fconv2d

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for kernel execution
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker processes tasks from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

// Submit adds a task to the pool
func (wp *WorkerPool) Submit(task func()) {
	wp.tasks <- task
}

// Close shuts down the worker pool after every submitted task has run
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
}

// ConvJob is one independent convolution of a batch
type ConvJob struct {
	Input  *Matrix
	Filter *Matrix
	Output *Matrix
	Params *ConvParams
}

// Conv2DBatch runs every job through Conv2D on up to workers goroutines
// (runtime.NumCPU() when workers <= 0).
//
// Jobs may share inputs and filters, but no job's output may overlap any
// buffer of another job; that is checked before anything runs. Failed jobs
// do not stop the others. The returned error joins the per-job errors.
func Conv2DBatch(jobs []ConvJob, workers int) error {
	const op = "Conv2DBatch"

	for i := range jobs {
		out := jobs[i].Output
		if out == nil {
			continue
		}
		for j := range jobs {
			if i == j {
				continue
			}
			for _, m := range []*Matrix{jobs[j].Input, jobs[j].Filter, jobs[j].Output} {
				if m != nil && overlaps(out.span(), m.span()) {
					return NewAliasError(op, fmt.Sprintf("job %d output overlaps a buffer of job %d", i, j))
				}
			}
		}
	}

	if len(jobs) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	errs := make([]error, len(jobs))
	pool := NewWorkerPool(workers)
	for i := range jobs {
		job := jobs[i]
		idx := i
		pool.Submit(func() {
			if err := Conv2D(job.Input, job.Filter, job.Output, job.Params); err != nil {
				errs[idx] = fmt.Errorf("job %d: %w", idx, err)
			}
		})
	}
	pool.Close()

	return errors.Join(errs...)
}
