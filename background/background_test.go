// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/background"
)

type ticker struct {
	count   int64
	stopped int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.count, step)
		}
	}
	atomic.StoreInt32(&state.stopped, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Stop waits for every Run to return
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.stopped), "process 1 still running")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.stopped), "process 2 still running")

	c1 := atomic.LoadInt64(&proc1.count)
	assert.True(t, c1 > 0, "process 1 did not run")
	assert.Equal(t, int64(0), c1%3, "wrong argument")

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, c1, atomic.LoadInt64(&proc1.count), "process ran after stop")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
