// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - the create, breed and transfer transitions
//
// each transition runs alone and is checked completely before
// anything is written; its writes are committed together or not at
// all
package kitties

import (
	"sync"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/entropy"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/lookup"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=../rpc/mocks/transitions.go -package=mocks github.com/bitmark-inc/kittyd/kitties Transitions

// Transitions - the operations offered to the RPC layer
type Transitions interface {
	Create(*account.Account) (uint32, error)
	Breed(*account.Account, uint32, uint32) (uint32, error)
	Transfer(*account.Account, uint32, string) (uint32, error)
	Kitty(uint32) (*Kitty, error)
	Owned(*account.Account, uint32, int) ([]Owned, error)
	CountOf(*account.Account) uint32
	Total() uint32
}

// Kitty - a kitty with its current ownership
type Kitty struct {
	Id     uint32           `json:"id"`
	Genome kitty.Genome     `json:"genome"`
	Owner  *account.Account `json:"owner"`
	Slot   uint32           `json:"slot"`
}

// Owned - one slot of an owner's list
type Owned struct {
	Slot    uint32       `json:"slot"`
	KittyId uint32       `json:"kittyId"`
	Genome  kitty.Genome `json:"genome"`
}

// Module - state transitions over one database
type Module struct {
	sync.Mutex

	log      *logger.L
	store    *storage.Store
	kitties  *kitty.Store
	owners   *ownership.Index
	source   entropy.Source
	resolver lookup.Lookup
	sequence *counter.Sequence
}

// New - create a module on an open database
//
// transition sequence numbers continue from the last one stored; a
// database without one starts from the number of kitties created
func New(log *logger.L, store *storage.Store, source entropy.Source, resolver lookup.Lookup) *Module {
	kitties := kitty.New(&store.Pool)
	total := kitties.Count(storage.Committed)

	next, found := loadSequence(storage.Committed, &store.Pool)
	if !found {
		next = uint64(total)
	}

	log.Infof("kitties: %d  next sequence: %d", total, next)

	return &Module{
		log:      log,
		store:    store,
		kitties:  kitties,
		owners:   ownership.New(&store.Pool),
		source:   source,
		resolver: resolver,
		sequence: counter.NewSequence(next),
	}
}

// run one transition inside a transaction, committing only if f
// succeeds
//
// f is given the next sequence number, which is stored with its
// writes and only advances when they are committed
func (m *Module) transition(f func(trx storage.Transaction, sequence uint64) (uint32, error)) (uint32, error) {
	sequence := m.sequence.Peek()

	trx, err := m.store.Begin()
	if nil != err {
		return 0, err
	}

	id, err := f(trx, sequence)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	putSequence(trx, &m.store.Pool, sequence+1)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	m.sequence.Next()
	return id, nil
}

// allocate an id and give the new kitty to owner
func (m *Module) mint(trx storage.Transaction, owner *account.Account, genome kitty.Genome) (uint32, error) {
	id, err := m.kitties.NextId(trx)
	if nil != err {
		return 0, err
	}
	// unreachable while ids fit in 32 bits, since no owner can hold
	// more kitties than were ever created
	err = m.owners.CanAppend(trx, owner)
	if nil != err {
		return 0, err
	}

	m.kitties.Allocate(trx, id, genome)
	err = m.owners.Append(trx, owner, id)
	if nil != err {
		logger.Panicf("kitties: id: %d  append after check: %s", id, err)
	}
	return id, nil
}

// Create - a new kitty with a random genome owned by caller
func (m *Module) Create(caller *account.Account) (uint32, error) {
	if caller.IsZero() {
		return 0, fault.InvalidOwner
	}

	m.Lock()
	defer m.Unlock()

	id, err := m.transition(func(trx storage.Transaction, sequence uint64) (uint32, error) {
		return m.mint(trx, caller, m.source.Draw(caller, sequence))
	})
	if nil != err {
		m.log.Debugf("create: owner: %s  error: %s", caller, err)
		return 0, err
	}

	m.log.Infof("create: id: %d  owner: %s", id, caller)
	return id, nil
}

// Breed - a new kitty owned by caller whose genome mixes two parents
//
// the parents may belong to anyone
func (m *Module) Breed(caller *account.Account, parent1 uint32, parent2 uint32) (uint32, error) {
	if caller.IsZero() {
		return 0, fault.InvalidOwner
	}
	if parent1 == parent2 {
		return 0, fault.RequireDifferentParent
	}

	m.Lock()
	defer m.Unlock()

	id, err := m.transition(func(trx storage.Transaction, sequence uint64) (uint32, error) {
		genome1, found := m.kitties.Get(trx, parent1)
		if !found {
			return 0, fault.InvalidKittyId
		}
		genome2, found := m.kitties.Get(trx, parent2)
		if !found {
			return 0, fault.InvalidKittyId
		}

		selector := m.source.Draw(caller, sequence)
		return m.mint(trx, caller, kitty.Mix(genome1, genome2, selector))
	})
	if nil != err {
		m.log.Debugf("breed: owner: %s  parents: %d, %d  error: %s", caller, parent1, parent2, err)
		return 0, err
	}

	m.log.Infof("breed: id: %d  owner: %s  parents: %d, %d", id, caller, parent1, parent2)
	return id, nil
}

// Transfer - give the kitty in one of caller's slots to recipient and
// return its id
//
// recipient is anything the resolver understands
func (m *Module) Transfer(caller *account.Account, slot uint32, recipient string) (uint32, error) {
	if caller.IsZero() {
		return 0, fault.InvalidOwner
	}

	m.Lock()
	defer m.Unlock()

	var to *account.Account
	id, err := m.transition(func(trx storage.Transaction, _ uint64) (uint32, error) {
		if slot >= m.owners.CountOf(trx, caller) {
			return 0, fault.NotOwner
		}

		var err error
		to, err = m.resolver.Lookup(recipient)
		if nil != err {
			m.log.Debugf("transfer: recipient: %q  lookup error: %s", recipient, err)
			return 0, fault.UnresolvableRecipient
		}

		return m.owners.TransferOne(trx, caller, slot, to)
	})
	if nil != err {
		m.log.Debugf("transfer: owner: %s  slot: %d  error: %s", caller, slot, err)
		return 0, err
	}

	m.log.Infof("transfer: id: %d  from: %s  to: %s", id, caller, to)
	return id, nil
}
