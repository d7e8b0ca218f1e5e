// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// size of the numeric values: ids, slots and counts
const uint32ByteSize = 4

// PoolHandle - access to one prefix of the database
//
// the read methods here see only committed data, use a Transaction
// to see pending writes
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key, nil if not found
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode it as big endian uint32
//
// second parameter is false if record was not found
// panics if the record is not 4 bytes
func (p *PoolHandle) GetN(key []byte) (uint32, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.database {
		return false
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// EncodeN - big endian uint32 as used for ids, slots and counts
func EncodeN(n uint32) []byte {
	buffer := make([]byte, uint32ByteSize)
	binary.BigEndian.PutUint32(buffer, n)
	return buffer
}

// DecodeN - inverse of EncodeN, false if the buffer is too short
func DecodeN(buffer []byte) (uint32, bool) {
	if len(buffer) < uint32ByteSize {
		return 0, false
	}
	return binary.BigEndian.Uint32(buffer[:uint32ByteSize]), true
}

func decodeN(key []byte, buffer []byte) (uint32, bool) {
	if nil == buffer {
		return 0, false
	}
	if uint32ByteSize != len(buffer) {
		logger.Panicf("pool.GetN invalid record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint32(buffer), true
}
