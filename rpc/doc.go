// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up and handle all of the incoming JSON RPC
// requests from parking clients
//
// services:
//   Node.Info
//   Parking.Insert, Parking.Erase, Parking.ModAvail, Parking.Notify
//   Parking.Spot, Parking.Spots
//
// standard golang RPC clients with the jsonrpc codec over TLS can
// be used to access these services
package rpc
