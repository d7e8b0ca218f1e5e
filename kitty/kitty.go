// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - the store of kitty genomes and the id counter
package kitty

import (
	"math"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// the counter has a single record with an empty key
var counterKey = []byte{}

// Store - kitty records of an open database
//
//   KittyCount      - next id to allocate
//   Kitties  id     - genome
type Store struct {
	counter *storage.PoolHandle
	kitties *storage.PoolHandle
}

// New - kitty store on the pools of a database
func New(pools *storage.Pools) *Store {
	return &Store{
		counter: pools.KittyCount,
		kitties: pools.Kitties,
	}
}

// Count - number of kitties ever created
func (s *Store) Count(reader storage.Reader) uint32 {
	n, _ := reader.GetN(s.counter, counterKey)
	return n
}

// NextId - the id the next allocation must use
func (s *Store) NextId(reader storage.Reader) (uint32, error) {
	id := s.Count(reader)
	if math.MaxUint32 == id {
		return 0, fault.CounterOverflow
	}
	return id, nil
}

// Allocate - record a new kitty and advance the counter
//
// id must be the result of NextId in the same transaction; the
// caller is responsible for giving the kitty an owner
func (s *Store) Allocate(trx storage.Transaction, id uint32, genome Genome) {
	expected, err := s.NextId(trx)
	if nil != err || expected != id {
		logger.Panicf("kitty.Allocate: id: %d  expected: %d  error: %v", id, expected, err)
	}

	trx.Put(s.kitties, storage.EncodeN(id), genome[:])
	trx.PutN(s.counter, counterKey, id+1)
}

// Get - genome of a kitty
//
// second parameter is false if the kitty does not exist
func (s *Store) Get(reader storage.Reader, id uint32) (Genome, bool) {
	genome := Genome{}
	buffer := reader.Get(s.kitties, storage.EncodeN(id))
	if nil == buffer {
		return genome, false
	}
	if err := GenomeFromBytes(&genome, buffer); nil != err {
		logger.Panicf("kitty.Get: id: %d  corrupt genome: %x", id, buffer)
	}
	return genome, true
}
