// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/keypair"
)

func runGenerate(c *cli.Context) error {

	m := getMetadata(c)

	k, err := keypair.MakeKeyPair(m.testnet)
	if nil != err {
		return err
	}

	printJson(m.w, k.Raw())
	return nil
}
