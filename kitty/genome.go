// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
)

// GenomeLength - number of bytes in a genome
const GenomeLength = 16

// Genome - the immutable payload of a kitty
// represented as hex text for JSON encoding
type Genome [GenomeLength]byte

// String - hex form for use by the fmt package (for %s)
func (genome Genome) String() string {
	return hex.EncodeToString(genome[:])
}

// GoString - for use by the fmt package (for %#v)
func (genome Genome) GoString() string {
	return "<genome:" + hex.EncodeToString(genome[:]) + ">"
}

// MarshalText - convert genome to hex text
func (genome Genome) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(GenomeLength))
	hex.Encode(buffer, genome[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a genome
func (genome *Genome) UnmarshalText(s []byte) error {
	if GenomeLength != hex.DecodedLen(len(s)) {
		return fault.InvalidGenomeLength
	}
	buffer := make([]byte, GenomeLength)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(genome[:], buffer)
	return nil
}

// GenomeFromBytes - convert and validate a byte slice to a genome
func GenomeFromBytes(genome *Genome, buffer []byte) error {
	if GenomeLength != len(buffer) {
		return fault.InvalidGenomeLength
	}
	copy(genome[:], buffer)
	return nil
}

// Mix - the genome of a child
//
// each bit of the selector picks the corresponding bit from parent1
// (when set) or from parent2 (when clear)
func Mix(parent1 Genome, parent2 Genome, selector Genome) Genome {
	child := Genome{}
	for i := 0; i < GenomeLength; i += 1 {
		child[i] = combine(parent1[i], parent2[i], selector[i])
	}
	return child
}

func combine(a byte, b byte, selector byte) byte {
	return (selector & a) | (^selector & b)
}
