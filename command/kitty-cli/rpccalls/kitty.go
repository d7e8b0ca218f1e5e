// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/keypair"
	"github.com/bitmark-inc/kittyd/kitties"
	kittyrpc "github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/transitionrecord"
)

// BreedData - parents for a new kitty
type BreedData struct {
	Owner   *keypair.KeyPair
	Parent1 uint32
	Parent2 uint32
}

// TransferData - the kitty to move and where to
type TransferData struct {
	Owner     *keypair.KeyPair
	Slot      uint32
	Recipient string
}

// SignedRecord - an offline signed record ready for Kitty.Submit
type SignedRecord struct {
	Record interface{} `json:"record"`
	Packed string      `json:"packed"`
}

func checkNetwork(owner *keypair.KeyPair, testnet bool) error {
	if nil == owner || nil == owner.Account {
		return fault.InvalidOwner
	}
	if owner.Account.IsTesting() != testnet {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}

// MakeCreate - build a signed create record
func MakeCreate(owner *keypair.KeyPair, testnet bool, nonce uint64) (*transitionrecord.CreateRecord, error) {
	if err := checkNetwork(owner, testnet); nil != err {
		return nil, err
	}
	r := &transitionrecord.CreateRecord{
		Owner: owner.Account,
		Nonce: nonce,
	}
	if err := r.Sign(owner.PrivateKey); nil != err {
		return nil, err
	}
	return r, nil
}

// MakeBreed - build a signed breed record
func MakeBreed(breedConfig *BreedData, testnet bool, nonce uint64) (*transitionrecord.BreedRecord, error) {
	if err := checkNetwork(breedConfig.Owner, testnet); nil != err {
		return nil, err
	}
	r := &transitionrecord.BreedRecord{
		Owner:   breedConfig.Owner.Account,
		Parent1: breedConfig.Parent1,
		Parent2: breedConfig.Parent2,
		Nonce:   nonce,
	}
	if err := r.Sign(breedConfig.Owner.PrivateKey); nil != err {
		return nil, err
	}
	return r, nil
}

// MakeTransfer - build a signed transfer record
func MakeTransfer(transferConfig *TransferData, testnet bool, nonce uint64) (*transitionrecord.TransferRecord, error) {
	if err := checkNetwork(transferConfig.Owner, testnet); nil != err {
		return nil, err
	}
	r := &transitionrecord.TransferRecord{
		Owner:     transferConfig.Owner.Account,
		Slot:      transferConfig.Slot,
		Recipient: transferConfig.Recipient,
		Nonce:     nonce,
	}
	if err := r.Sign(transferConfig.Owner.PrivateKey); nil != err {
		return nil, err
	}
	return r, nil
}

// Create - mint a new kitty for the owner
func (client *Client) Create(owner *keypair.KeyPair) (*kittyrpc.TransitionReply, error) {
	r, err := MakeCreate(owner, client.testnet, client.nonce())
	if nil != err {
		return nil, err
	}

	client.printJson("Create Request", r)

	var reply kittyrpc.TransitionReply
	if err := client.client.Call("Kitty.Create", r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)
	return &reply, nil
}

// Breed - make a child of two kitties
func (client *Client) Breed(breedConfig *BreedData) (*kittyrpc.TransitionReply, error) {
	r, err := MakeBreed(breedConfig, client.testnet, client.nonce())
	if nil != err {
		return nil, err
	}

	client.printJson("Breed Request", r)

	var reply kittyrpc.TransitionReply
	if err := client.client.Call("Kitty.Breed", r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Breed Reply", reply)
	return &reply, nil
}

// Transfer - move the kitty at a slot to a recipient
func (client *Client) Transfer(transferConfig *TransferData) (*kittyrpc.TransitionReply, error) {
	r, err := MakeTransfer(transferConfig, client.testnet, client.nonce())
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Request", r)

	var reply kittyrpc.TransitionReply
	if err := client.client.Call("Kitty.Transfer", r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)
	return &reply, nil
}

// Sign - pack a signed record for later submission
func Sign(r transitionrecord.Record) (*SignedRecord, error) {
	packed, err := r.Pack()
	if nil != err {
		return nil, err
	}
	return &SignedRecord{
		Record: r,
		Packed: hex.EncodeToString(packed),
	}, nil
}

// Submit - send a previously signed record
func (client *Client) Submit(packed string) (*kittyrpc.SubmitReply, error) {
	arguments := kittyrpc.SubmitArguments{
		Packed: packed,
	}

	client.printJson("Submit Request", arguments)

	var reply kittyrpc.SubmitReply
	if err := client.client.Call("Kitty.Submit", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)
	return &reply, nil
}

// Get - fetch a single kitty
func (client *Client) Get(id uint32) (*kitties.Kitty, error) {
	arguments := kittyrpc.GetArguments{
		Id: id,
	}

	client.printJson("Get Request", arguments)

	var reply kittyrpc.GetReply
	if err := client.client.Call("Kitty.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)
	return reply.Kitty, nil
}
