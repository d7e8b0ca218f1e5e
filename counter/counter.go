// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value that can be synchronously
// incremented or decremented, e.g. the number of open connections
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Sequence - monotonic numbering of state transitions
//
// each committed transition takes one number so that two transitions
// by the same caller never hash the same entropy input
type Sequence struct {
	next uint64
}

// NewSequence - numbering starts at first
func NewSequence(first uint64) *Sequence {
	return &Sequence{next: first}
}

// Next - return the current number and advance
func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.next, 1) - 1
}

// Peek - the number the next call to Next will return
func (s *Sequence) Peek() uint64 {
	return atomic.LoadUint64(&s.next)
}
