// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Reader - read access to pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint32, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - all writes of one state transition
//
// writes are held in a batch and applied together by Commit, reads
// see the pending writes first; Abort discards everything
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint32)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// Committed - a Reader that only sees committed data
var Committed Reader = committed{}

type committed struct{}

func (committed) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (committed) GetN(handle *PoolHandle, key []byte) (uint32, bool) {
	return handle.GetN(key)
}

func (committed) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

// Put - store a key/value bytes pair
func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// PutN - store a big endian uint32
func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint32) {
	t.Put(handle, key, EncodeN(value))
}

// Delete - remove a key
func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - pending value, else committed value, nil if not found
func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	value, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return handle.Get(key)
}

// GetN - as Get, decoded as big endian uint32
func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint32, bool) {
	return decodeN(key, t.Get(handle, key))
}

// Has - check if a key exists, including pending writes
func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	_, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return handle.Has(key)
}

// Commit - write the batch atomically and end the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}

	err := t.db.Write(t.batch, nil)
	if nil != err {
		logger.Criticalf("transaction commit error: %s", err)
	}
	t.reset()
	return err
}

// Abort - discard all pending writes and end the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

// InUse - true between begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

// must hold lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
