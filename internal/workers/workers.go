// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides a bounded pool for running independent tasks
// concurrently. The pool caps the number of in-flight goroutines so that
// a large batch of remote calls does not open an unbounded number of
// connections at once.
package workers

import "golang.org/x/sync/errgroup"

// DefaultConcurrency is the pool limit used when the caller does not
// configure one.
const DefaultConcurrency = 4

// Pool runs submitted tasks with at most a fixed number of goroutines.
// Submit blocks once the limit is reached until a slot frees up, so
// producers are naturally throttled. A Pool is single-use: after Wait
// returns, create a new one.
type Pool struct {
	group *errgroup.Group
}

// NewPool returns a pool running at most limit tasks concurrently.
// A non-positive limit falls back to [DefaultConcurrency].
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	group := new(errgroup.Group)
	group.SetLimit(limit)

	return &Pool{group: group}
}

// Submit schedules task on the pool, blocking while the pool is full.
// Tasks report their results through their own closures; a failing task
// must not prevent the remaining tasks from running.
func (p *Pool) Submit(task func()) {
	p.group.Go(func() error {
		task()
		return nil
	})
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	_ = p.group.Wait()
}
