// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// the sequence pool holds a single record
var sequenceKey = []byte{}

// the next sequence number stored in the database
//
// false if none has been stored yet
func loadSequence(reader storage.Reader, pools *storage.Pools) (uint64, bool) {
	buffer := reader.Get(pools.Sequence, sequenceKey)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("kitties: corrupt sequence record: %x", buffer)
	}
	return binary.BigEndian.Uint64(buffer), true
}

func putSequence(trx storage.Transaction, pools *storage.Pools, next uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, next)
	trx.Put(pools.Sequence, sequenceKey, buffer)
}
