// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Start       time.Time
	Version     string
	Chain       string
	ReadOnly    bool
	Transitions kitties.Transitions
	counter     *counter.Counter
}

// New - the Node service
func New(log *logger.L, start time.Time, version string, chain string, readOnly bool, counter *counter.Counter, transitions kitties.Transitions) *Node {
	return &Node{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:       start,
		Version:     version,
		Chain:       chain,
		ReadOnly:    readOnly,
		Transitions: transitions,
		counter:     counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string `json:"chain"`
	ReadOnly bool   `json:"readOnly"`
	Kitties  uint32 `json:"kitties"`
	RPCs     uint64 `json:"rpcs"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detailed information use HTTP GET requests
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.ReadOnly = node.ReadOnly
	reply.Kitties = node.Transitions.Total()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
