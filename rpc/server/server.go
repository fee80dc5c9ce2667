// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parkingspot/counter"
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/rpc/node"
	"github.com/bitmark-inc/parkingspot/rpc/parking"
	"github.com/bitmark-inc/parkingspot/storage"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, runtime parking.Pusher, keyring parking.Verifier, reg *registry.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, reg, rpcCount))
	_ = server.Register(parking.New(log, runtime, keyring, reg, storage.Pool.Spots))

	return server
}
