// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestOwnerKitties(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tr := mocks.NewMockTransitions(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), tr, true)

	arg := owner.KittiesArguments{
		Owner: fixtures.Alice.Account,
		Start: 5,
		Count: 2,
	}

	owned := []kitties.Owned{
		{Slot: 5, KittyId: 12, Genome: kitty.Genome{1}},
		{Slot: 6, KittyId: 3, Genome: kitty.Genome{2}},
	}

	tr.EXPECT().Owned(arg.Owner, arg.Start, arg.Count).Return(owned, nil).Times(1)
	tr.EXPECT().CountOf(arg.Owner).Return(uint32(9)).Times(1)

	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Nil(t, err, "wrong Kitties")
	assert.Equal(t, uint32(7), reply.Next, "wrong next")
	assert.Equal(t, uint32(9), reply.Total, "wrong total")
	assert.Equal(t, owned, reply.Data, "wrong data")
}

func TestOwnerKittiesEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tr := mocks.NewMockTransitions(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), tr, true)

	arg := owner.KittiesArguments{
		Owner: fixtures.Bob.Account,
		Start: 3,
		Count: 10,
	}

	tr.EXPECT().Owned(arg.Owner, arg.Start, arg.Count).Return([]kitties.Owned{}, nil).Times(1)
	tr.EXPECT().CountOf(arg.Owner).Return(uint32(3)).Times(1)

	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Nil(t, err, "wrong Kitties")
	assert.Equal(t, uint32(3), reply.Next, "wrong next")
	assert.Equal(t, 0, len(reply.Data), "wrong data")
}

func TestOwnerKittiesInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tr := mocks.NewMockTransitions(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), tr, true)

	tests := []struct {
		arg      owner.KittiesArguments
		expected error
	}{
		{owner.KittiesArguments{Owner: fixtures.Alice.Account, Count: 0}, fault.InvalidCount},
		{owner.KittiesArguments{Owner: fixtures.Alice.Account, Count: 101}, fault.InvalidCount},
		{owner.KittiesArguments{Count: 1}, fault.InvalidOwner},
		{owner.KittiesArguments{Owner: fixtures.LiveDave.Account, Count: 1}, fault.WrongNetworkForPublicKey},
	}

	for i, test := range tests {
		var reply owner.KittiesReply
		err := o.Kitties(&test.arg, &reply)
		assert.Equal(t, test.expected, err, "%d: wrong error", i)
	}
}
