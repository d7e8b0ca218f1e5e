// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/keypair"
	"github.com/bitmark-inc/kittyd/transitionrecord"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// the identity from the global seed option
func checkSeed(c *cli.Context, m *metadata) (*keypair.KeyPair, error) {
	seed := c.GlobalString("seed")
	if "" == seed {
		return nil, fmt.Errorf("seed is required: use --seed or KITTY_SEED")
	}
	k, err := keypair.KeyPairFromSeed(seed)
	if nil != err {
		return nil, err
	}
	if k.Account.IsTesting() != m.testnet {
		return nil, fmt.Errorf("seed is not for this network")
	}
	return k, nil
}

func checkUint32(name string, n uint) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%s: %d is out of range", name, n)
	}
	return uint32(n), nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.useTLS, m.verbose, m.e)
}

func printSigned(m *metadata, r transitionrecord.Record) error {
	signed, err := rpccalls.Sign(r)
	if nil != err {
		return err
	}
	printJson(m.w, signed)
	return nil
}
