// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic log of memory use
type memoryStatistics struct {
	log *logger.L
}

func (m *memoryStatistics) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		text, err := json.Marshal(ms)
		if nil != err {
			m.log.Errorf("marshal error: %s", err)
		} else {
			m.log.Debugf("stats: %s", text)
		}
		a := ms.Alloc / mega
		t := ms.TotalAlloc / mega
		s := ms.Sys / mega
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}

// periodic log of kitty total and open RPC connections
type nodeStatistics struct {
	log         *logger.L
	transitions kitties.Transitions
}

func (n *nodeStatistics) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
		n.log.Infof("kitties: %d  rpc connections: %d", n.transitions.Total(), connectionCountRPC.Uint64())
	}
}
