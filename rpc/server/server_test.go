// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/kittyd/transitionrecord"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// start a server on an in-memory pipe and return a JSON client for it
func setup(t *testing.T, readOnly bool) (*rpc.Client, *mocks.MockTransitions, *gomock.Controller) {
	ctl := gomock.NewController(t)
	tr := mocks.NewMockTransitions(ctl)

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", chain.Testing, readOnly, &c, tr)

	serverSide, clientSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	return jsonrpc.NewClient(clientSide), tr, ctl
}

// following tests make sure proper methods are registered to server

func TestKittyGet(t *testing.T) {
	client, tr, ctl := setup(t, false)
	defer ctl.Finish()
	defer client.Close()

	tr.EXPECT().Kitty(uint32(7)).Return(nil, fault.InvalidKittyId).Times(1)

	var reply kitty.GetReply
	err := client.Call("Kitty.Get", &kitty.GetArguments{Id: 7}, &reply)
	assert.NotNil(t, err, "wrong Kitty.Get")
	assert.Equal(t, fault.InvalidKittyId.Error(), err.Error(), "wrong error")
}

func TestKittyCreateReadOnly(t *testing.T) {
	client, _, ctl := setup(t, true)
	defer ctl.Finish()
	defer client.Close()

	arg := transitionrecord.CreateRecord{
		Owner: fixtures.Alice.Account,
	}
	var reply kitty.TransitionReply
	err := client.Call("Kitty.Create", &arg, &reply)
	assert.NotNil(t, err, "wrong Kitty.Create")
	assert.Equal(t, fault.NotAvailableInReadOnlyMode.Error(), err.Error(), "wrong error")
}

func TestOwnerKitties(t *testing.T) {
	client, tr, ctl := setup(t, false)
	defer ctl.Finish()
	defer client.Close()

	tr.EXPECT().Owned(gomock.Any(), uint32(0), 1).Return([]kitties.Owned{}, nil).Times(1)
	tr.EXPECT().CountOf(gomock.Any()).Return(uint32(0)).Times(1)

	arg := owner.KittiesArguments{
		Owner: fixtures.Alice.Account,
		Count: 1,
	}
	var reply owner.KittiesReply
	err := client.Call("Owner.Kitties", &arg, &reply)
	assert.Nil(t, err, "wrong Owner.Kitties")
	assert.Equal(t, uint32(0), reply.Total, "wrong total")
}

func TestNodeInfo(t *testing.T) {
	client, tr, ctl := setup(t, false)
	defer ctl.Finish()
	defer client.Close()

	tr.EXPECT().Total().Return(uint32(11)).Times(1)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, uint32(11), reply.Kitties, "wrong kitties")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}
