// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all kittyd services registered
func Create(log *logger.L, version string, chainName string, readOnly bool, rpcCount *counter.Counter, transitions kitties.Transitions) *rpc.Server {

	start := time.Now().UTC()
	testing := chain.IsTesting(chainName)

	server := rpc.NewServer()

	_ = server.Register(kitty.New(log, transitions, readOnly, testing))
	_ = server.Register(owner.New(log, transitions, testing))
	_ = server.Register(node.New(log, start, version, chainName, readOnly, rpcCount, transitions))

	return server
}
