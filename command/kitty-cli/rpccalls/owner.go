// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// OwnedData - a page of an owner's kitties
type OwnedData struct {
	Owner *account.Account
	Start uint32
	Count int
}

// Owned - list kitties belonging to an account
func (client *Client) Owned(ownedConfig *OwnedData) (*owner.KittiesReply, error) {

	arguments := owner.KittiesArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", arguments)

	var reply owner.KittiesReply
	if err := client.client.Call("Owner.Kitties", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)
	return &reply, nil
}
