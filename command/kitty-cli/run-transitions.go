// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := checkSeed(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account)
	}

	if c.Bool("offline") {
		r, err := rpccalls.MakeCreate(owner, m.testnet, rpccalls.Nonce(time.Now()))
		if nil != err {
			return err
		}
		return printSigned(m, r)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBreed(c *cli.Context) error {

	m := getMetadata(c)

	parent1, err := checkUint32("parent1", c.Uint("parent1"))
	if nil != err {
		return err
	}
	parent2, err := checkUint32("parent2", c.Uint("parent2"))
	if nil != err {
		return err
	}
	if !c.IsSet("parent1") || !c.IsSet("parent2") {
		return fmt.Errorf("both parents are required")
	}

	owner, err := checkSeed(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account)
		fmt.Fprintf(m.e, "parents: %d %d\n", parent1, parent2)
	}

	breedConfig := &rpccalls.BreedData{
		Owner:   owner,
		Parent1: parent1,
		Parent2: parent2,
	}

	if c.Bool("offline") {
		r, err := rpccalls.MakeBreed(breedConfig, m.testnet, rpccalls.Nonce(time.Now()))
		if nil != err {
			return err
		}
		return printSigned(m, r)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(breedConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := getMetadata(c)

	slot, err := checkUint32("slot", c.Uint("slot"))
	if nil != err {
		return err
	}
	if !c.IsSet("slot") {
		return fmt.Errorf("slot is required")
	}

	receiver := strings.TrimSpace(c.String("receiver"))
	if "" == receiver {
		return fmt.Errorf("receiver is required")
	}

	owner, err := checkSeed(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account)
		fmt.Fprintf(m.e, "slot: %d\n", slot)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	transferConfig := &rpccalls.TransferData{
		Owner:     owner,
		Slot:      slot,
		Recipient: receiver,
	}

	if c.Bool("offline") {
		r, err := rpccalls.MakeTransfer(transferConfig, m.testnet, rpccalls.Nonce(time.Now()))
		if nil != err {
			return err
		}
		return printSigned(m, r)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSubmit(c *cli.Context) error {

	m := getMetadata(c)

	packed := strings.TrimSpace(c.String("packed"))
	if "" == packed {
		return fmt.Errorf("packed record is required")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(packed)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
