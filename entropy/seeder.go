// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"crypto/rand"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// SeedLength - bytes of fresh randomness per draw
const SeedLength = 32

// SystemSeeder - a fresh seed from the operating system for every draw
type SystemSeeder struct{}

// Seed - read SeedLength random bytes
func (SystemSeeder) Seed() []byte {
	seed := make([]byte, SeedLength)
	_, err := rand.Read(seed)
	logger.PanicIfError("entropy.SystemSeeder", err)
	return seed
}

// FixedSeeder - the same seed for every draw
//
// with the same sequence of transitions this reproduces the same
// genomes; kittyd only allows it on test chains
type FixedSeeder []byte

// NewFixedSeeder - copy of seed, which must not be empty
func NewFixedSeeder(seed []byte) (FixedSeeder, error) {
	if 0 == len(seed) {
		return nil, fault.InvalidSeed
	}
	s := make(FixedSeeder, len(seed))
	copy(s, seed)
	return s, nil
}

// Seed - the fixed seed
func (s FixedSeeder) Seed() []byte {
	return s
}
