// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transitionrecord - signed requests for the kitty transitions
//
// a packed record is:
//
//   Varint64(tag) ⧺ fields ⧺ Varint64(len) ⧺ signature
//
// and the signature is the owner's ed25519 signature over everything
// before it
package transitionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/account"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	CreateTag   = TagType(iota) // new kitty
	BreedTag    = TagType(iota) // child of two kitties
	TransferTag = TagType(iota) // give a kitty away

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
	GetOwner() *account.Account
	GetNonce() uint64
}

// byte sizes for various fields
const (
	maxRecipientLength = 256
	maxSignatureLength = 1024
)

// CreateRecord - request a new kitty
type CreateRecord struct {
	Owner     *account.Account  `json:"owner"`     // base58
	Nonce     uint64            `json:"nonce"`     // unix milliseconds
	Signature account.Signature `json:"signature"` // hex
}

// BreedRecord - request a child of two kitties
type BreedRecord struct {
	Owner     *account.Account  `json:"owner"`     // base58: owner of the child
	Parent1   uint32            `json:"parent1"`   // kitty id
	Parent2   uint32            `json:"parent2"`   // kitty id
	Nonce     uint64            `json:"nonce"`     // unix milliseconds
	Signature account.Signature `json:"signature"` // hex
}

// TransferRecord - request that a kitty moves to a new owner
type TransferRecord struct {
	Owner     *account.Account  `json:"owner"`     // base58: current owner
	Slot      uint32            `json:"slot"`      // position in the owner's list
	Recipient string            `json:"recipient"` // base58 account or alias
	Nonce     uint64            `json:"nonce"`     // unix milliseconds
	Signature account.Signature `json:"signature"` // hex
}

// GetOwner - the signer of the record
func (r *CreateRecord) GetOwner() *account.Account { return r.Owner }

// GetOwner - the signer of the record
func (r *BreedRecord) GetOwner() *account.Account { return r.Owner }

// GetOwner - the signer of the record
func (r *TransferRecord) GetOwner() *account.Account { return r.Owner }

// GetNonce - the time the record was made
func (r *CreateRecord) GetNonce() uint64 { return r.Nonce }

// GetNonce - the time the record was made
func (r *BreedRecord) GetNonce() uint64 { return r.Nonce }

// GetNonce - the time the record was made
func (r *TransferRecord) GetNonce() uint64 { return r.Nonce }

// Digest - identifies a packed record
type Digest [32]byte

// MakeDigest - SHA3-256 of the complete packed record
func (record Packed) MakeDigest() Digest {
	return sha3.Sum256(record)
}

// String - hex form of a digest
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}
