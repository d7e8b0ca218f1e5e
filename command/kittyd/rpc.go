// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// number of RPC connections currently open
var connectionCountRPC counter.Counter

// start the client RPC listeners, returning a function to stop them
func startRPC(configuration *listeners.RPCConfiguration, chainName string, readOnly bool, transitions kitties.Transitions) (func(), error) {

	log := logger.New("rpc")

	var tlsConfig *tls.Config
	if configuration.TLS {
		c, fingerprint, err := certificate.ReadFiles(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return nil, err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
		tlsConfig = c
	} else {
		log.Warnf("%s: TLS is disabled", tlsName)
	}

	s := server.Create(log, version, chainName, readOnly, &connectionCountRPC, transitions)

	rpcListener, err := listeners.NewRPC(configuration, log, &connectionCountRPC, s, tlsConfig)
	if nil != err {
		return nil, err
	}

	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return nil, err
	}

	return rpcListener.Stop, nil
}
