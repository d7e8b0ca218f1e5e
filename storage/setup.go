// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type Pools struct {
	KittyCount *PoolHandle `prefix:"C"`
	Kitties    *PoolHandle `prefix:"K"`
	OwnerCount *PoolHandle `prefix:"N"`
	OwnerList  *PoolHandle `prefix:"L"`
	OwnerOf    *PoolHandle `prefix:"O"`
	Sequence   *PoolHandle `prefix:"S"`
}

// Store - an open database and its pools
type Store struct {
	Pool Pools

	log      *logger.L
	db       *leveldb.DB
	trx      *transaction
	readOnly bool
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open up a database file, creating it if necessary
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	return setup(db, readOnly)
}

// NewMemory - a database that only lives as long as the process
func NewMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	switch {
	case 0 == version && !readOnly:
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	case currentDBVersion != version:
		log.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		return nil, fault.DatabaseVersionMismatch
	}

	s := &Store{
		log:      log,
		db:       db,
		trx:      newTransaction(db),
		readOnly: readOnly,
	}

	if err := s.initialisePools(); nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return s, nil
}

// scan each field of the pools and create a handle from its prefix tag
func (s *Store) initialisePools() error {
	poolType := reflect.TypeOf(s.Pool)
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]string)
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %v has same prefix as: %v", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: s.db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database
func (s *Store) Close() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// IsReadOnly - true if no transactions can be started
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// Begin - start the single write transaction
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}
	if err := s.trx.begin(); nil != err {
		return nil, err
	}
	return s.trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
