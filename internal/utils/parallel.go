// Package utils holds small helpers shared across the pipeline packages that
// don't belong to any single one of them.
package utils

import "runtime"

// Parallelize splits [0, nbIterations) into contiguous chunks and runs work
// on each chunk in its own goroutine, blocking until all chunks complete.
// With no maxCpus argument it fans out across runtime.NumCPU() workers,
// mirroring the per-polynomial block assignment described for the kernel
// grid: each chunk is owned by exactly one goroutine for the duration of the
// call, so work must not touch another chunk's slice range.
func Parallelize(nbIterations int, work func(start, end int), maxCpus ...int) {
	nbTasks := runtime.NumCPU()
	if len(maxCpus) == 1 {
		nbTasks = maxCpus[0]
	}
	if nbTasks <= 0 {
		nbTasks = 1
	}
	if nbTasks > nbIterations {
		nbTasks = nbIterations
	}
	if nbTasks <= 1 {
		work(0, nbIterations)
		return
	}

	nbIterationsPerCpus := nbIterations / nbTasks
	remainder := nbIterations % nbTasks

	chDone := make(chan struct{}, nbTasks)
	start := 0
	for i := 0; i < nbTasks; i++ {
		end := start + nbIterationsPerCpus
		if i < remainder {
			end++
		}
		if start == end {
			chDone <- struct{}{}
			continue
		}
		go func(start, end int) {
			work(start, end)
			chDone <- struct{}{}
		}(start, end)
		start = end
	}
	for i := 0; i < nbTasks; i++ {
		<-chDone
	}
}
