// SPDX-License-Identifier: MIT

// Package workpool provides injectable parallel-map executors.
//
// An Executor maps a function over the index range [0,n). Callers choose the
// strategy explicitly:
//
//	Sequential{}                    - one goroutine, strict index order.
//	Parallel{Workers: 8}            - bounded worker pool over index chunks.
//	Adaptive{Threshold: 4096, ...}  - Sequential below Threshold, Parallel above.
//
// Executors never reorder results: fn receives the index and is expected to
// write into its own slot of a caller-owned slice, so materialized output keeps
// index order regardless of scheduling.
package workpool
