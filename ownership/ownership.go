// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - per owner dense lists of kitty ids
//
// the slots of an owner are always exactly 0 .. count-1, a removal
// moves the last item into the vacated slot
package ownership

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Index - ownership records of an open database
//
//   OwnerCount  owner           - number of kitties owned
//   OwnerList   owner ⧺ slot    - kitty id
//   OwnerOf     id              - slot ⧺ owner
type Index struct {
	count *storage.PoolHandle
	list  *storage.PoolHandle
	owner *storage.PoolHandle
}

// New - ownership index on the pools of a database
func New(pools *storage.Pools) *Index {
	return &Index{
		count: pools.OwnerCount,
		list:  pools.OwnerList,
		owner: pools.OwnerOf,
	}
}

func listKey(owner *account.Account, slot uint32) []byte {
	return append(owner.Bytes(), storage.EncodeN(slot)...)
}

func ownerValue(owner *account.Account, slot uint32) []byte {
	return append(storage.EncodeN(slot), owner.Bytes()...)
}

// CountOf - number of kitties held by owner, zero if unknown
func (ix *Index) CountOf(reader storage.Reader, owner *account.Account) uint32 {
	n, _ := reader.GetN(ix.count, owner.Bytes())
	return n
}

// CanAppend - check that owner can receive one more kitty
func (ix *Index) CanAppend(reader storage.Reader, owner *account.Account) error {
	if math.MaxUint32 == ix.CountOf(reader, owner) {
		return fault.OwnerCountOverflow
	}
	return nil
}

// KittyAt - the kitty id in an owner's slot
//
// second parameter is false if the slot is empty
func (ix *Index) KittyAt(reader storage.Reader, owner *account.Account, slot uint32) (uint32, bool) {
	return reader.GetN(ix.list, listKey(owner, slot))
}

// OwnerOf - current owner and slot of a kitty
//
// third parameter is false if the kitty has no owner
func (ix *Index) OwnerOf(reader storage.Reader, id uint32) (*account.Account, uint32, bool) {
	buffer := reader.Get(ix.owner, storage.EncodeN(id))
	if nil == buffer {
		return nil, 0, false
	}

	slot, ok := storage.DecodeN(buffer)
	if !ok {
		logger.Panicf("ownership.OwnerOf: id: %d  corrupt record: %x", id, buffer)
	}
	owner, err := account.AccountFromBytes(buffer[4:])
	if nil != err {
		logger.Panicf("ownership.OwnerOf: id: %d  corrupt owner: %x  error: %s", id, buffer, err)
	}
	return owner, slot, true
}

// Append - add a kitty to the end of an owner's list
func (ix *Index) Append(trx storage.Transaction, owner *account.Account, id uint32) error {
	count := ix.CountOf(trx, owner)
	if math.MaxUint32 == count {
		return fault.OwnerCountOverflow
	}

	trx.PutN(ix.list, listKey(owner, count), id)
	trx.Put(ix.owner, storage.EncodeN(id), ownerValue(owner, count))
	trx.PutN(ix.count, owner.Bytes(), count+1)
	return nil
}

// RemoveAt - take the kitty out of an owner's slot and return its id
//
// the kitty in the last slot is moved into the vacated slot
func (ix *Index) RemoveAt(trx storage.Transaction, owner *account.Account, slot uint32) (uint32, error) {
	last, move, err := compact(ix.CountOf(trx, owner), slot)
	if nil != err {
		return 0, err
	}

	id := ix.mustKittyAt(trx, owner, slot)

	if move {
		movedId := ix.mustKittyAt(trx, owner, last)
		trx.PutN(ix.list, listKey(owner, slot), movedId)
		trx.Put(ix.owner, storage.EncodeN(movedId), ownerValue(owner, slot))
	}

	trx.Delete(ix.list, listKey(owner, last))
	trx.Delete(ix.owner, storage.EncodeN(id))

	if 0 == last {
		trx.Delete(ix.count, owner.Bytes())
	} else {
		trx.PutN(ix.count, owner.Bytes(), last)
	}
	return id, nil
}

// TransferOne - move the kitty in a slot of one owner to the end of
// another owner's list and return its id
//
// nothing is written unless the whole move can be done
func (ix *Index) TransferOne(trx storage.Transaction, from *account.Account, slot uint32, to *account.Account) (uint32, error) {

	// removal first lowers the count when giving to self
	if !from.Equal(to) {
		if err := ix.CanAppend(trx, to); nil != err {
			return 0, err
		}
	}

	id, err := ix.RemoveAt(trx, from, slot)
	if nil != err {
		return 0, err
	}

	err = ix.Append(trx, to, id)
	if nil != err {
		logger.Panicf("ownership.TransferOne: id: %d  append error: %s", id, err)
	}
	return id, nil
}

// a count with a missing slot means the database is corrupt
func (ix *Index) mustKittyAt(trx storage.Transaction, owner *account.Account, slot uint32) uint32 {
	id, found := ix.KittyAt(trx, owner, slot)
	if !found {
		logger.Criticalf("ownership: owner: %s  count: %d", owner, ix.CountOf(trx, owner))
		logger.Panicf("ownership: owner: %s  missing slot: %d", owner, slot)
	}
	return id
}
