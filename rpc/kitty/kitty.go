// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/kittyd/transitionrecord"
	"github.com/bitmark-inc/logger"
)

// Kitty
// -----

const (
	rateLimitKitty = 200
	rateBurstKitty = 100

	// NonceWindow - a record is only accepted if its nonce is this
	// close to now
	NonceWindow = 10 * time.Minute

	// a record leaves the window before it is forgotten
	seenExpiry = 2 * NonceWindow
)

// Kitty - type for the RPC
type Kitty struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Transitions kitties.Transitions
	ReadOnly    bool
	Testing     bool

	now  func() time.Time
	seen *cache.Cache
}

// New - the Kitty service
func New(log *logger.L, transitions kitties.Transitions, readOnly bool, testing bool) *Kitty {
	return &Kitty{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitKitty, rateBurstKitty),
		Transitions: transitions,
		ReadOnly:    readOnly,
		Testing:     testing,
		now:         time.Now,
		seen:        cache.New(seenExpiry, seenExpiry),
	}
}

// TransitionReply - result of create, breed and transfer
type TransitionReply struct {
	Id     uint32 `json:"id"`     // the new or transferred kitty
	Digest string `json:"digest"` // SHA3-256 of the packed record
}

// Create - a new random kitty for the record's owner
func (kitty *Kitty) Create(arguments *transitionrecord.CreateRecord, reply *TransitionReply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	kitty.Log.Infof("Kitty.Create: %+v", arguments)

	digest, err := kitty.admit(arguments)
	if nil != err {
		return err
	}

	id, err := kitty.Transitions.Create(arguments.Owner)
	if nil != err {
		kitty.release(digest)
		return err
	}

	reply.Id = id
	reply.Digest = digest.String()
	return nil
}

// Breed - a child of two kitties for the record's owner
func (kitty *Kitty) Breed(arguments *transitionrecord.BreedRecord, reply *TransitionReply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	kitty.Log.Infof("Kitty.Breed: %+v", arguments)

	digest, err := kitty.admit(arguments)
	if nil != err {
		return err
	}

	id, err := kitty.Transitions.Breed(arguments.Owner, arguments.Parent1, arguments.Parent2)
	if nil != err {
		kitty.release(digest)
		return err
	}

	reply.Id = id
	reply.Digest = digest.String()
	return nil
}

// Transfer - give the kitty in one of the owner's slots away
func (kitty *Kitty) Transfer(arguments *transitionrecord.TransferRecord, reply *TransitionReply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	kitty.Log.Infof("Kitty.Transfer: %+v", arguments)

	digest, err := kitty.admit(arguments)
	if nil != err {
		return err
	}

	id, err := kitty.Transitions.Transfer(arguments.Owner, arguments.Slot, arguments.Recipient)
	if nil != err {
		kitty.release(digest)
		return err
	}

	reply.Id = id
	reply.Digest = digest.String()
	return nil
}

// SubmitArguments - a record packed and signed offline
type SubmitArguments struct {
	Packed string `json:"packed"` // hex
}

// SubmitReply - result of a packed record
type SubmitReply struct {
	Record string `json:"record"` // record type
	TransitionReply
}

// Submit - run the transition of a packed record
func (kitty *Kitty) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	kitty.Log.Infof("Kitty.Submit: %q", arguments.Packed)

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return err
	}

	record, n, err := transitionrecord.Packed(packed).Unpack(kitty.Testing)
	if nil != err {
		return err
	}
	if len(packed) != n {
		return fault.InvalidRecord
	}

	digest, err := kitty.admit(record)
	if nil != err {
		return err
	}

	var id uint32
	switch r := record.(type) {
	case *transitionrecord.CreateRecord:
		reply.Record = "Create"
		id, err = kitty.Transitions.Create(r.Owner)
	case *transitionrecord.BreedRecord:
		reply.Record = "Breed"
		id, err = kitty.Transitions.Breed(r.Owner, r.Parent1, r.Parent2)
	case *transitionrecord.TransferRecord:
		reply.Record = "Transfer"
		id, err = kitty.Transitions.Transfer(r.Owner, r.Slot, r.Recipient)
	default:
		logger.Panicf("Kitty.Submit: unhandled record: %#v", record)
	}
	if nil != err {
		kitty.release(digest)
		return err
	}

	reply.Id = id
	reply.Digest = digest.String()
	return nil
}

// GetArguments - arguments for Get
type GetArguments struct {
	Id uint32 `json:"id"`
}

// GetReply - result of Get
type GetReply struct {
	Kitty *kitties.Kitty `json:"kitty"`
}

// Get - a kitty and its current owner
func (kitty *Kitty) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(kitty.Limiter); nil != err {
		return err
	}

	k, err := kitty.Transitions.Kitty(arguments.Id)
	if nil != err {
		return err
	}

	reply.Kitty = k
	return nil
}

// all checks a record must pass before its transition is run
//
// the record is remembered so it cannot be replayed; a record whose
// transition then fails is released and may be sent again
func (kitty *Kitty) admit(record transitionrecord.Record) (transitionrecord.Digest, error) {
	var digest transitionrecord.Digest

	if kitty.ReadOnly {
		return digest, fault.NotAvailableInReadOnlyMode
	}

	owner := record.GetOwner()
	if nil == owner || nil == owner.AccountInterface {
		return digest, fault.InvalidOwner
	}
	if owner.IsTesting() != kitty.Testing {
		return digest, fault.WrongNetworkForPublicKey
	}

	packed, err := record.Pack()
	if nil != err {
		return digest, err
	}

	now := uint64(kitty.now().UnixNano() / int64(time.Millisecond))
	window := uint64(NonceWindow / time.Millisecond)
	nonce := record.GetNonce()
	if nonce+window < now || nonce > now+window {
		return digest, fault.InvalidNonce
	}

	digest = packed.MakeDigest()
	if err := kitty.seen.Add(digest.String(), struct{}{}, cache.DefaultExpiration); nil != err {
		return digest, fault.DuplicateRequest
	}
	return digest, nil
}

// forget a record whose transition failed
func (kitty *Kitty) release(digest transitionrecord.Digest) {
	kitty.seen.Delete(digest.String())
}
