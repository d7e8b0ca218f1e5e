// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transitionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/transitionrecord"
)

var alice = fixtures.Alice

// tag ⧺ len ⧺ owner
func header(tag byte) []byte {
	ownerBytes := alice.Account.Bytes()
	return append([]byte{tag, byte(len(ownerBytes))}, ownerBytes...)
}

// attach a signature the way the packer must
func withSignature(message []byte) ([]byte, []byte) {
	signature := ed25519.Sign(alice.PrivateKey, message)
	packed := append(append([]byte{}, message...), byte(len(signature)))
	return append(packed, signature...), signature
}

func TestPackCreate(t *testing.T) {
	r := transitionrecord.CreateRecord{
		Owner: alice.Account,
		Nonce: 0x1234,
	}

	assert.Equal(t, byte(0x13), alice.Account.Bytes()[0], "testing ed25519 key variant")

	message := append(header(0x01), 0xb4, 0x24)
	expected, signature := withSignature(message)

	assert.Nil(t, r.Sign(alice.PrivateKey), "sign")
	assert.Equal(t, signature, []byte(r.Signature), "signature")

	packed, err := r.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, transitionrecord.Packed(expected), packed, "packed")
	assert.Nil(t, r.Verify(), "verify")

	unpacked, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "unpack length")
	assert.Equal(t, &r, unpacked, "unpacked")
}

func TestPackBreed(t *testing.T) {
	r := transitionrecord.BreedRecord{
		Owner:   alice.Account,
		Parent1: 3,
		Parent2: 300,
		Nonce:   1,
	}

	message := append(header(0x02), 0x03, 0xac, 0x02, 0x01)
	expected, _ := withSignature(message)

	assert.Nil(t, r.Sign(alice.PrivateKey), "sign")
	packed, err := r.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, transitionrecord.Packed(expected), packed, "packed")

	unpacked, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "unpack length")
	assert.Equal(t, &r, unpacked, "unpacked")
}

func TestPackTransfer(t *testing.T) {
	r := transitionrecord.TransferRecord{
		Owner:     alice.Account,
		Slot:      0,
		Recipient: "bob",
		Nonce:     2,
	}

	message := append(header(0x03), 0x00, 0x03, 'b', 'o', 'b', 0x02)
	expected, _ := withSignature(message)

	assert.Nil(t, r.Sign(alice.PrivateKey), "sign")
	packed, err := r.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, transitionrecord.Packed(expected), packed, "packed")

	unpacked, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "unpack length")
	assert.Equal(t, &r, unpacked, "unpacked")
	assert.Equal(t, alice.Account, unpacked.GetOwner(), "owner")
}

func TestPackBadSignature(t *testing.T) {
	r := transitionrecord.CreateRecord{
		Owner: alice.Account,
		Nonce: 5,
	}
	assert.Nil(t, r.Sign(fixtures.Bob.PrivateKey), "sign with wrong key")

	packed, err := r.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "wrong key")
	assert.Equal(t, transitionrecord.Packed(append(header(0x01), 0x05)), packed, "unsigned message returned")
	assert.Equal(t, fault.InvalidSignature, r.Verify(), "verify")

	// any change to a signed field invalidates it
	assert.Nil(t, r.Sign(alice.PrivateKey), "sign")
	r.Nonce = 6
	assert.Equal(t, fault.InvalidSignature, r.Verify(), "changed nonce")

	r.Signature = make([]byte, 2000)
	_, err = r.Pack()
	assert.Equal(t, fault.SignatureTooLong, err, "long signature")
}

func TestPackInvalid(t *testing.T) {
	_, err := (&transitionrecord.CreateRecord{}).Pack()
	assert.Equal(t, fault.InvalidOwner, err, "no owner")

	err = (&transitionrecord.BreedRecord{}).Sign(alice.PrivateKey)
	assert.Equal(t, fault.InvalidOwner, err, "sign no owner")

	_, err = (&transitionrecord.TransferRecord{Owner: alice.Account}).Pack()
	assert.Equal(t, fault.InvalidRecord, err, "no recipient")

	long := make([]byte, 257)
	for i := range long {
		long[i] = 'x'
	}
	_, err = (&transitionrecord.TransferRecord{Owner: alice.Account, Recipient: string(long)}).Pack()
	assert.Equal(t, fault.InvalidRecord, err, "long recipient")
}

func TestUnpackErrors(t *testing.T) {
	r := transitionrecord.BreedRecord{
		Owner:   alice.Account,
		Parent1: 1,
		Parent2: 2,
		Nonce:   3,
	}
	assert.Nil(t, r.Sign(alice.PrivateKey), "sign")
	packed, err := r.Pack()
	assert.Nil(t, err, "pack")

	for i := 0; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack(true)
		assert.NotNil(t, err, "truncated at: %d", i)
	}

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network")

	_, _, err = transitionrecord.Packed{0x00}.Unpack(true)
	assert.Equal(t, fault.InvalidRecord, err, "null tag")

	_, _, err = transitionrecord.Packed{0x04}.Unpack(true)
	assert.Equal(t, fault.InvalidRecord, err, "unknown tag")
}

func TestDigest(t *testing.T) {
	packed := transitionrecord.Packed{1, 2, 3}
	expected := sha3.Sum256([]byte{1, 2, 3})

	digest := packed.MakeDigest()
	assert.Equal(t, expected[:], digest[:], "digest")
	assert.Equal(t, 64, len(digest.String()), "hex length")
}
