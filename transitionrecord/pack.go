// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transitionrecord

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// Pack - pack CreateRecord
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (r *CreateRecord) Pack() (Packed, error) {
	message, err := r.unsigned()
	if nil != err {
		return nil, err
	}
	return signed(message, r.Owner, r.Signature)
}

func (r *CreateRecord) unsigned() (Packed, error) {
	if nil == r.Owner || nil == r.Owner.AccountInterface {
		return nil, fault.InvalidOwner
	}

	message := util.ToVarint64(uint64(CreateTag))
	message = appendAccount(message, r.Owner)
	message = appendUint64(message, r.Nonce)
	return message, nil
}

// Sign - attach the owner's signature
func (r *CreateRecord) Sign(privateKey ed25519.PrivateKey) error {
	message, err := r.unsigned()
	if nil != err {
		return err
	}
	r.Signature = ed25519.Sign(privateKey, message)
	return nil
}

// Verify - check the owner's signature
func (r *CreateRecord) Verify() error {
	_, err := r.Pack()
	return err
}

// Pack - pack BreedRecord
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (r *BreedRecord) Pack() (Packed, error) {
	message, err := r.unsigned()
	if nil != err {
		return nil, err
	}
	return signed(message, r.Owner, r.Signature)
}

func (r *BreedRecord) unsigned() (Packed, error) {
	if nil == r.Owner || nil == r.Owner.AccountInterface {
		return nil, fault.InvalidOwner
	}

	message := util.ToVarint64(uint64(BreedTag))
	message = appendAccount(message, r.Owner)
	message = appendUint64(message, uint64(r.Parent1))
	message = appendUint64(message, uint64(r.Parent2))
	message = appendUint64(message, r.Nonce)
	return message, nil
}

// Sign - attach the owner's signature
func (r *BreedRecord) Sign(privateKey ed25519.PrivateKey) error {
	message, err := r.unsigned()
	if nil != err {
		return err
	}
	r.Signature = ed25519.Sign(privateKey, message)
	return nil
}

// Verify - check the owner's signature
func (r *BreedRecord) Verify() error {
	_, err := r.Pack()
	return err
}

// Pack - pack TransferRecord
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (r *TransferRecord) Pack() (Packed, error) {
	message, err := r.unsigned()
	if nil != err {
		return nil, err
	}
	return signed(message, r.Owner, r.Signature)
}

func (r *TransferRecord) unsigned() (Packed, error) {
	if nil == r.Owner || nil == r.Owner.AccountInterface {
		return nil, fault.InvalidOwner
	}
	if 0 == len(r.Recipient) || len(r.Recipient) > maxRecipientLength {
		return nil, fault.InvalidRecord
	}

	message := util.ToVarint64(uint64(TransferTag))
	message = appendAccount(message, r.Owner)
	message = appendUint64(message, uint64(r.Slot))
	message = appendString(message, r.Recipient)
	message = appendUint64(message, r.Nonce)
	return message, nil
}

// Sign - attach the owner's signature
func (r *TransferRecord) Sign(privateKey ed25519.PrivateKey) error {
	message, err := r.unsigned()
	if nil != err {
		return err
	}
	r.Signature = ed25519.Sign(privateKey, message)
	return nil
}

// Verify - check the owner's signature
func (r *TransferRecord) Verify() error {
	_, err := r.Pack()
	return err
}

// check the signature and append it
func signed(message Packed, owner *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}

	err := owner.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, signature), nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
