// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumListCount - largest page returned by List
const MaximumListCount = 100

// Record - one occupied slot
type Record struct {
	Slot    uint32 `json:"slot"`
	KittyId uint32 `json:"kittyId"`
}

// List - committed slots of an owner starting at slot start
//
// count is clipped to MaximumListCount
func (ix *Index) List(owner *account.Account, start uint32, count int) ([]Record, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	if count > MaximumListCount {
		count = MaximumListCount
	}

	ownerBytes := owner.Bytes()
	cursor := ix.list.NewFetchCursor().Prefix(ownerBytes).Seek(listKey(owner, start))

	// owner ⧺ slot → id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		if len(ownerBytes)+4 != len(item.Key) {
			logger.Panicf("ownership.List: owner: %s  invalid key: %x", owner, item.Key)
		}
		slot, _ := storage.DecodeN(item.Key[len(ownerBytes):])
		id, ok := storage.DecodeN(item.Value)
		if !ok {
			logger.Panicf("ownership.List: owner: %s  slot: %d  invalid id: %x", owner, slot, item.Value)
		}
		records = append(records, Record{
			Slot:    slot,
			KittyId: id,
		})
	}
	return records, nil
}
