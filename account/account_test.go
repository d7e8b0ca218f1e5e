// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

type accountTest struct {
	algorithm     int
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		algorithm:     account.ED25519,
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		algorithm:     account.ED25519,
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		algorithm:     account.ED25519,
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		algorithm:     account.Nothing,
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("12fa"),
		base58Account: "3MvykBZzN",
	},
}

type invalid struct {
	str string
	err error
}

var testInvalidAccountFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},    // checksum mismatch
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotPublicKey},        // private key
	{"", fault.CannotDecodeAccount},                                                  // empty
}

func TestFromBytes(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(test.algorithm<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", index) {
			continue
		}

		assert.Equal(t, buffer, acc.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.zero, acc.IsZero(), "%d: zero", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: base58", index)
	}
}

func TestFromBytesInvalid(t *testing.T) {
	_, err := account.AccountFromBytes([]byte{0x10, 0x01, 0x02})
	assert.Equal(t, fault.NotPublicKey, err, "private key variant")

	_, err = account.AccountFromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err, "short ed25519 key")

	_, err = account.AccountFromBytes([]byte{0x71, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyType, err, "unknown algorithm")

	_, err = account.AccountFromBytes([]byte{0x11})
	assert.Equal(t, fault.InvalidKeyLength, err, "no key")
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, test.algorithm, acc.KeyType(), "%d: key type", index)
		assert.True(t, bytes.Equal(test.publicKey, acc.PublicKeyBytes()), "%d: public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: to base58", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON round trip", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %q", index, test.str)
	}
}

func TestEqual(t *testing.T) {
	a1, _ := account.AccountFromBase58(testAccount[0].base58Account)
	a2, _ := account.AccountFromBase58(testAccount[0].base58Account)
	b, _ := account.AccountFromBase58(testAccount[1].base58Account)

	assert.True(t, a1.Equal(a2), "same account")
	assert.False(t, a1.Equal(b), "different account")
	assert.False(t, a1.Equal(nil), "nil account")
}

func TestSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	assert.Nil(t, err, "generate key")

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}

	message := []byte("kitty transfer")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[1:]), "short signature")

	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal")

	var s account.Signature
	assert.Nil(t, s.UnmarshalText(text), "unmarshal")
	assert.Equal(t, signature, s, "round trip")
}

// only used with pre-prepared data
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
