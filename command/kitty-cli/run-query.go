// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

func runKitty(c *cli.Context) error {

	m := getMetadata(c)

	if !c.IsSet("id") {
		return fmt.Errorf("kitty id is required")
	}
	id, err := checkUint32("id", c.Uint("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOwned(c *cli.Context) error {

	m := getMetadata(c)

	start, err := checkUint32("start", c.Uint("start"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var owner *account.Account
	if s := strings.TrimSpace(c.String("owner")); "" != s {
		owner, err = account.AccountFromBase58(s)
		if nil != err {
			return err
		}
	} else {
		k, err := checkSeed(c, m)
		if nil != err {
			return err
		}
		owner = k.Account
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	ownedConfig := &rpccalls.OwnedData{
		Owner: owner,
		Start: start,
		Count: count,
	}

	response, err := client.Owned(ownedConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetKittydInfo()
	if nil != err {
		return fmt.Errorf("get info error: %s", err)
	}

	printJson(m.w, info)
	return nil
}
