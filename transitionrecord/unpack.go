// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transitionrecord

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *transitionrecord.BreedRecord:
//
// the signature is not verified here, Pack the result to do that
func (record Packed) Unpack(testnet bool) (r Record, n int, e error) {

	defer func() {
		if recovered := recover(); nil != recovered {
			r = nil
			n = 0
			e = fault.TruncatedRecord
		}
	}()

	// no reading beyond the end into the rest of the underlying array
	record = record[:len(record):len(record)]

	recordType, n := util.ClippedVarint64(record, 1, uint64(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.InvalidRecord
	}

	// owner public key is always first
	ownerLength, ownerOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == ownerOffset {
		return nil, 0, fault.TruncatedRecord
	}
	n += ownerOffset
	owner, err := account.AccountFromBytes(record[n : n+int(ownerLength)])
	if nil != err {
		return nil, 0, err
	}
	if owner.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	n += int(ownerLength)

unpack_switch:
	switch TagType(recordType) {

	case CreateTag:

		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		return &CreateRecord{
			Owner:     owner,
			Nonce:     nonce,
			Signature: signature,
		}, n, nil

	case BreedTag:

		parent1, parent1Length := util.ClippedVarint64(record[n:], 0, math.MaxUint32)
		if 0 == parent1Length {
			break unpack_switch
		}
		n += parent1Length

		parent2, parent2Length := util.ClippedVarint64(record[n:], 0, math.MaxUint32)
		if 0 == parent2Length {
			break unpack_switch
		}
		n += parent2Length

		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		return &BreedRecord{
			Owner:     owner,
			Parent1:   uint32(parent1),
			Parent2:   uint32(parent2),
			Nonce:     nonce,
			Signature: signature,
		}, n, nil

	case TransferTag:

		slot, slotLength := util.ClippedVarint64(record[n:], 0, math.MaxUint32)
		if 0 == slotLength {
			break unpack_switch
		}
		n += slotLength

		recipientLength, recipientOffset := util.ClippedVarint64(record[n:], 1, maxRecipientLength)
		if 0 == recipientOffset {
			break unpack_switch
		}
		n += recipientOffset
		recipient := string(record[n : n+int(recipientLength)])
		n += int(recipientLength)

		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		return &TransferRecord{
			Owner:     owner,
			Slot:      uint32(slot),
			Recipient: recipient,
			Nonce:     nonce,
			Signature: signature,
		}, n, nil

	default: // also NullTag
		return nil, 0, fault.InvalidRecord
	}
	return nil, 0, fault.TruncatedRecord
}

// signature is remainder of record
func unpackSignature(buffer []byte) (account.Signature, int) {
	signatureLength, signatureOffset := util.ClippedVarint64(buffer, 1, maxSignatureLength)
	if 0 == signatureOffset {
		return nil, 0
	}
	signature := make(account.Signature, signatureLength)
	copy(signature, buffer[signatureOffset:signatureOffset+int(signatureLength)])
	return signature, signatureOffset + int(signatureLength)
}
