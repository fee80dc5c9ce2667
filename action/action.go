// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package action - the actions accepted by the parking registry
//
// an action names the contract it is addressed to, the action
// itself, the permissions that authorise it and a JSON encoded
// argument structure
package action

import (
	"encoding/json"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/fault"
)

// action names
const (
	InsertName   = account.Name(0x74f0abe400000000) // insert
	EraseName    = account.Name(0x55cd850000000000) // erase
	ModAvailName = account.Name(0x95126d99d1000000) // modavail
	NotifyName   = account.Name(0x9d32e5f800000000) // notify
)

// Action - a named, authorised request to a contract
type Action struct {
	Account       account.Name              `json:"account"`
	Name          account.Name              `json:"name"`
	Authorisation []account.PermissionLevel `json:"authorization"`
	Data          json.RawMessage           `json:"data"`
}

// Insert - create a new spot
//
// TimeCode is accepted for compatibility and not stored
type Insert struct {
	User     account.Name `json:"user"`
	SpotId   uint64       `json:"spot_id"`
	ZoneId   uint64       `json:"zone_id"`
	TimeCode uint32       `json:"time_code"`
	Owner    account.Name `json:"owner"`
}

// Erase - remove a spot
type Erase struct {
	User   account.Name `json:"user"`
	SpotId uint64       `json:"spot_id"`
	ZoneId uint64       `json:"zone_id"`
}

// ModAvail - pay for a time slot and take ownership of a spot
type ModAvail struct {
	User     account.Name   `json:"user"`
	Quantity currency.Asset `json:"quantity"`
	SpotId   uint64         `json:"spot_id"`
	ZoneId   uint64         `json:"zone_id"`
	TimeCode uint32         `json:"time_code"`
	Buyer    account.Name   `json:"buyer"`
	Seller   account.Name   `json:"seller"`
}

// Notify - relay a message to an account
type Notify struct {
	User account.Name `json:"user"`
	Msg  string       `json:"msg"`
}

// New - pack arguments into an action
func New(contract account.Name, name account.Name, authorisation []account.PermissionLevel, arguments interface{}) (*Action, error) {
	data, err := json.Marshal(arguments)
	if nil != err {
		return nil, err
	}
	return &Action{
		Account:       contract,
		Name:          name,
		Authorisation: authorisation,
		Data:          data,
	}, nil
}

// Unpack - decode the arguments
func (a *Action) Unpack(arguments interface{}) error {
	if 0 == len(a.Data) {
		return fault.MissingParameters
	}
	return json.Unmarshal(a.Data, arguments)
}

// IsAuthorisedBy - true if actor is one of the authorising permissions
func (a *Action) IsAuthorisedBy(actor account.Name) bool {
	for _, p := range a.Authorisation {
		if p.Actor == actor {
			return true
		}
	}
	return false
}
