// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
)

func TestPoolsInitialised(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	assert.NotNil(t, s.Pool.KittyCount, "KittyCount")
	assert.NotNil(t, s.Pool.Kitties, "Kitties")
	assert.NotNil(t, s.Pool.OwnerCount, "OwnerCount")
	assert.NotNil(t, s.Pool.OwnerList, "OwnerList")
	assert.NotNil(t, s.Pool.OwnerOf, "OwnerOf")
	assert.NotNil(t, s.Pool.Sequence, "Sequence")

	assert.Equal(t, byte('K'), s.Pool.Kitties.prefix, "kitties prefix")
	assert.Equal(t, []byte{'L' + 1}, s.Pool.OwnerList.limit, "owner list limit")
}

func TestOpenFileAndVersion(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.leveldb")

	// read only must not create
	_, err = Open(name, ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	s, err := Open(name, ReadWrite)
	if !assert.Nil(t, err, "create database") {
		return
	}
	putElements(t, s, s.Pool.Kitties, []stringElement{{"key", "value"}})
	s.Close()

	s, err = Open(name, ReadOnly)
	if !assert.Nil(t, err, "reopen read only") {
		return
	}
	assert.Equal(t, []byte("value"), s.Pool.Kitties.Get([]byte("key")), "persisted value")
	assert.True(t, s.IsReadOnly(), "read only flag")

	_, err = s.Begin()
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "begin on read only")
	s.Close()

	// a future version must be rejected
	db, err := leveldb.OpenFile(name, nil)
	if !assert.Nil(t, err, "raw open") {
		return
	}
	assert.Nil(t, putVersion(db, currentDBVersion+1), "put version")
	db.Close()

	_, err = Open(name, ReadWrite)
	assert.Equal(t, fault.DatabaseVersionMismatch, err, "version mismatch")
}

func TestEncodeN(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, EncodeN(0x102), "encode")

	n, ok := DecodeN([]byte{0xff, 0xff, 0xff, 0xff, 0x99})
	assert.True(t, ok, "decode ok")
	assert.Equal(t, uint32(0xffffffff), n, "decode value")

	_, ok = DecodeN([]byte{0x01})
	assert.False(t, ok, "short buffer")
}

func TestGetNPanicsOnCorruptRecord(t *testing.T) {
	s := setupMemory(t)
	defer s.Close()

	putElements(t, s, s.Pool.OwnerCount, []stringElement{{"owner", "too long value"}})

	assert.Panics(t, func() { s.Pool.OwnerCount.GetN([]byte("owner")) }, "corrupt count")
}
