//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"sync/atomic"
	"time"
)

// Controller carries the cancellation flag and node budget polled by the
// search at every node entry. One Controller belongs to exactly one
// in-flight search; it is never shared between concurrent searches.
type Controller struct {
	stopFlag int32
	deadline time.Time
	maxNodes uint64
	nodes    uint64
}

// NewController creates a controller bound to the given Limits, started now.
func NewController(limits Limits) *Controller {
	c := &Controller{maxNodes: limits.MaxNodes}
	if limits.MaxTime > 0 {
		c.deadline = time.Now().Add(limits.MaxTime)
	}
	return c
}

// Stop sets the cancellation flag. Safe to call from another goroutine.
func (c *Controller) Stop() {
	atomic.StoreInt32(&c.stopFlag, 1)
}

// CountNode increments the node counter and returns it.
func (c *Controller) CountNode() uint64 {
	return atomic.AddUint64(&c.nodes, 1)
}

// Nodes returns the number of nodes counted so far.
func (c *Controller) Nodes() uint64 {
	return atomic.LoadUint64(&c.nodes)
}

// Cancelled reports whether the search should raise a cancellation signal:
// an explicit stop was requested, the wall-clock deadline passed, or the
// node budget was exhausted. Polled at every node entry per the concurrency
// model instead of relying on panics or context cancellation.
func (c *Controller) Cancelled() bool {
	if atomic.LoadInt32(&c.stopFlag) != 0 {
		return true
	}
	if !c.deadline.IsZero() && time.Now().After(c.deadline) {
		c.Stop()
		return true
	}
	if c.maxNodes > 0 && c.Nodes() >= c.maxNodes {
		c.Stop()
		return true
	}
	return false
}
