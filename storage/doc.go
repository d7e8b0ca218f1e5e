// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ⧺     = concatenation of byte data
// 3. id    = kitty id as big endian uint32 (4 bytes)
// 4. slot  = zero based position in an owner's list, big endian uint32
// 5. count = number of items as big endian uint32
// 6. owner = account bytes (key variant ⧺ public key)
//
// Kitties:
//
//   C                  - next kitty id, also the total ever created
//                        data: count
//   K ⧺ id             - kitty record
//                        data: 16 byte genome
//
// Ownership:
//
//   N ⧺ owner          - number of kitties owned, slots 0..N-1 are all present
//                        data: count
//   L ⧺ owner ⧺ slot   - list of owned kitties
//                        data: id
//   O ⧺ id             - current owner of a kitty
//                        data: slot ⧺ owner
//
// Transitions:
//
//   S                  - next transition sequence number
//                        data: big endian uint64
//
// Version:
//
//   0x00 ⧺ "VERSION"   - database version
//                        data: big endian uint32
package storage
