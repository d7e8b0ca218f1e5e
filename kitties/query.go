// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Kitty - committed state of one kitty
func (m *Module) Kitty(id uint32) (*Kitty, error) {
	m.Lock()
	defer m.Unlock()

	genome, found := m.kitties.Get(storage.Committed, id)
	if !found {
		return nil, fault.InvalidKittyId
	}

	owner, slot, found := m.owners.OwnerOf(storage.Committed, id)
	if !found {
		logger.Panicf("kitties: id: %d  has no owner", id)
	}

	return &Kitty{
		Id:     id,
		Genome: genome,
		Owner:  owner,
		Slot:   slot,
	}, nil
}

// Owned - a page of an owner's kitties
func (m *Module) Owned(owner *account.Account, start uint32, count int) ([]Owned, error) {
	if owner.IsZero() {
		return nil, fault.InvalidOwner
	}

	m.Lock()
	defer m.Unlock()

	records, err := m.owners.List(owner, start, count)
	if nil != err {
		return nil, err
	}

	result := make([]Owned, 0, len(records))
	for _, r := range records {
		genome, found := m.kitties.Get(storage.Committed, r.KittyId)
		if !found {
			logger.Panicf("kitties: owner: %s  slot: %d  missing id: %d", owner, r.Slot, r.KittyId)
		}
		result = append(result, Owned{
			Slot:    r.Slot,
			KittyId: r.KittyId,
			Genome:  genome,
		})
	}
	return result, nil
}

// CountOf - number of kitties an owner holds
func (m *Module) CountOf(owner *account.Account) uint32 {
	if owner.IsZero() {
		return 0
	}
	return m.owners.CountOf(storage.Committed, owner)
}

// Total - number of kitties ever created
func (m *Module) Total() uint32 {
	return m.kitties.Count(storage.Committed)
}
