// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		a        byte
		b        byte
		selector byte
		expected byte
	}{
		{0xaa, 0x55, 0xf0, 0xa5},
		{0x55, 0xaa, 0xf0, 0x5a},
		{0xaa, 0x55, 0xff, 0xaa},
		{0xaa, 0x55, 0x00, 0x55},
		{0x00, 0xff, 0x0f, 0xf0},
		{0x12, 0x12, 0x9c, 0x12},
	}

	for i, test := range tests {
		actual := combine(test.a, test.b, test.selector)
		assert.Equal(t, test.expected, actual, "%d: combine(%08b, %08b, %08b)", i, test.a, test.b, test.selector)
	}
}

func TestCombineIsNotSymmetric(t *testing.T) {
	a := byte(0xaa)
	b := byte(0x55)
	selector := byte(0xf0)

	assert.NotEqual(t, combine(a, b, selector), combine(b, a, selector), "swapping parents changed nothing")
}

func TestMix(t *testing.T) {
	parent1 := Genome{}
	parent2 := Genome{}
	selector := Genome{}
	for i := 0; i < GenomeLength; i += 1 {
		parent1[i] = 0xaa
		parent2[i] = 0x55
		selector[i] = byte(i * 17)
	}

	child := Mix(parent1, parent2, selector)
	for i := 0; i < GenomeLength; i += 1 {
		assert.Equal(t, combine(0xaa, 0x55, byte(i*17)), child[i], "byte: %d", i)
	}

	assert.Equal(t, parent1, Mix(parent1, parent2, Genome{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}), "all from parent1")
	assert.Equal(t, parent2, Mix(parent1, parent2, Genome{}), "all from parent2")
}

func TestGenomeText(t *testing.T) {
	genome := Genome{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0xff}
	hexText := "000102030405060708090a0b0c0d0eff"

	assert.Equal(t, hexText, genome.String(), "string")
	assert.Equal(t, "<genome:"+hexText+">", genome.GoString(), "go string")

	buffer, err := json.Marshal(genome)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"`+hexText+`"`, string(buffer), "json")

	var decoded Genome
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, genome, decoded, "decoded")
}

func TestGenomeInvalid(t *testing.T) {
	var genome Genome
	assert.Equal(t, fault.InvalidGenomeLength, genome.UnmarshalText([]byte("0102")), "short text")
	assert.NotNil(t, genome.UnmarshalText([]byte("zz0102030405060708090a0b0c0d0eff")), "bad hex")
	assert.Equal(t, fault.InvalidGenomeLength, GenomeFromBytes(&genome, []byte{1, 2, 3}), "short bytes")
}
