// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Transitions kitties.Transitions
	Testing     bool
}

// Owner kitties
// -------------

const (
	rateLimitOwner = 200
	rateBurstOwner = 100
)

// KittiesArguments - arguments for RPC
type KittiesArguments struct {
	Owner *account.Account `json:"owner"` // base58
	Start uint32           `json:"start"` // first slot
	Count int              `json:"count"` // number of records
}

// KittiesReply - result of owner RPC
type KittiesReply struct {
	Next  uint32          `json:"next"`  // Start value for the next call
	Total uint32          `json:"total"` // number of kitties the owner holds
	Data  []kitties.Owned `json:"data"`
}

// New - the Owner service
func New(log *logger.L, transitions kitties.Transitions, testing bool) *Owner {
	return &Owner{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Transitions: transitions,
		Testing:     testing,
	}
}

// Kitties - list kitties belonging to an account
func (owner *Owner) Kitties(arguments *KittiesArguments, reply *KittiesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, ownership.MaximumListCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Kitties: %+v", arguments)

	if nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.InvalidOwner
	}
	if arguments.Owner.IsTesting() != owner.Testing {
		return fault.WrongNetworkForPublicKey
	}

	data, err := owner.Transitions.Owned(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("owned: %+v", data)

	reply.Data = data
	reply.Total = owner.Transitions.CountOf(arguments.Owner)

	// slots are dense so the next page starts after the last one returned
	if 0 == len(data) {
		reply.Next = arguments.Start
	} else {
		reply.Next = data[len(data)-1].Slot + 1
	}
	return nil
}
