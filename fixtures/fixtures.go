// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for tests
package fixtures

import (
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"

	// LogCategory - logger channel used by tests
	LogCategory = "testing"
)

// SetupTestLogger - log criticals only into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - flush and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// KeyPair - an account together with its signing key
type KeyPair struct {
	Account    *account.Account
	PrivateKey ed25519.PrivateKey
}

// Sign - ed25519 signature over message
func (k KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(k.PrivateKey, message)
}

// MakeKeyPair - deterministic testing account derived from a single byte
func MakeKeyPair(n byte, test bool) KeyPair {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = n
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return KeyPair{
		Account: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      test,
				PublicKey: publicKey,
			},
		},
		PrivateKey: privateKey,
	}
}

// well known testing identities
var (
	Alice = MakeKeyPair(0x01, true)
	Bob   = MakeKeyPair(0x02, true)
	Carol = MakeKeyPair(0x03, true)

	// LiveDave - an account for the live chain
	LiveDave = MakeKeyPair(0x04, false)
)
