// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/currency"
)

// RecordReader - read access to the spot table
type RecordReader interface {
	Get(key []byte) ([]byte, bool)
}

// RecordStore - the spot table inside an open transaction
//
// writes become visible to later reads immediately and are made
// permanent or discarded by whoever opened the transaction
type RecordStore interface {
	RecordReader
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// Authority - the accounts that authorised the running action
type Authority interface {
	IsAuthorised(account.Name) bool
}

// PaymentGateway - the token transfer service
//
// an error means the transfer did not happen and the enclosing
// action must be aborted
type PaymentGateway interface {
	Transfer(from account.Name, to account.Name, quantity currency.Asset, memo string, authorisation account.PermissionLevel) error
}
