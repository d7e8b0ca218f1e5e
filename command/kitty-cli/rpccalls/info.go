// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/rpc/node"
)

// GetKittydInfo - request status from kittyd
func (client *Client) GetKittydInfo() (*node.InfoReply, error) {

	var reply node.InfoReply
	if err := client.client.Call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)
	return &reply, nil
}
