// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - client identities derived from a base58 seed
package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// seed layout: header ⧺ network ⧺ 32 byte core ⧺ 4 byte sha3 checksum
var seedHeader = []byte{0x5a, 0xfe, 0x01}

const (
	seedCoreLength     = ed25519.SeedSize
	seedChecksumLength = 4
	seedLength         = 3 + 1 + seedCoreLength + seedChecksumLength
)

// KeyPair - an identity able to sign transition records
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	seedCore := make([]byte, seedCoreLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if seedCoreLength != n {
		panic("too few random bytes")
	}
	return packSeed(seedCore, test), nil
}

func packSeed(seedCore []byte, test bool) string {
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := make([]byte, 0, seedLength)
	packedSeed = append(packedSeed, seedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return base58.Encode(packedSeed)
}

// MakeKeyPair - create a new seed and derive its keys
func MakeKeyPair(test bool) (*KeyPair, error) {
	seed, err := NewSeed(test)
	if err != nil {
		return nil, err
	}
	return KeyPairFromSeed(seed)
}

// KeyPairFromSeed - derive the keys from an existing seed
func KeyPairFromSeed(seed string) (*KeyPair, error) {
	packedSeed, err := base58.Decode(seed)
	if nil != err {
		return nil, fault.InvalidSeed
	}
	if seedLength != len(packedSeed) || !bytes.HasPrefix(packedSeed, seedHeader) {
		return nil, fault.InvalidSeed
	}

	split := len(packedSeed) - seedChecksumLength
	checksum := sha3.Sum256(packedSeed[:split])
	if !bytes.Equal(checksum[:seedChecksumLength], packedSeed[split:]) {
		return nil, fault.ChecksumMismatch
	}

	var test bool
	switch packedSeed[len(seedHeader)] {
	case 0x00:
		test = false
	case 0x01:
		test = true
	default:
		return nil, fault.InvalidSeed
	}

	seedCore := packedSeed[len(seedHeader)+1 : split]
	privateKey := ed25519.NewKeyFromSeed(seedCore)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return &KeyPair{
		Seed: seed,
		Account: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      test,
				PublicKey: publicKey,
			},
		},
		PrivateKey: privateKey,
	}, nil
}

// Raw - text form for display
func (k *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       k.Seed,
		Account:    k.Account.String(),
		PublicKey:  hex.EncodeToString(k.Account.PublicKeyBytes()),
		PrivateKey: hex.EncodeToString(k.PrivateKey),
	}
}
