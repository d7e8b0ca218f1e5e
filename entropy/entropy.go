// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy - per transition random genomes
//
// a draw is the 128 bit blake2b digest of:
//
//   seed ⧺ caller ⧺ varint(sequence)
//
// the seed must not be known to the caller before the transition is
// submitted
package entropy

import (
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/util"
	"github.com/bitmark-inc/logger"
)

// Source - supplies the random material for create and breed
type Source interface {
	Draw(caller *account.Account, sequence uint64) kitty.Genome
}

// Seeder - supplies the seed for each draw
type Seeder interface {
	Seed() []byte
}

type source struct {
	seeder Seeder
}

// New - a source drawing its seeds from seeder
func New(seeder Seeder) Source {
	return &source{
		seeder: seeder,
	}
}

// Draw - hash the seed with the caller and sequence number
func (s *source) Draw(caller *account.Account, sequence uint64) kitty.Genome {
	h, err := blake2b.New(kitty.GenomeLength, nil)
	logger.PanicIfError("entropy.Draw: blake2b", err)

	h.Write(s.seeder.Seed())
	h.Write(caller.Bytes())
	h.Write(util.ToVarint64(sequence))

	genome := kitty.Genome{}
	copy(genome[:], h.Sum(nil))
	return genome
}
