// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/rpc/parking"
)

// build the signed part of a request
//
// a zero submitted time lets the server use its own clock
func (client *Client) signed(submitted time.Time) parking.Signed {
	s := parking.Signed{
		Credentials: client.credentials,
	}
	if !submitted.IsZero() {
		s.Submitted = submitted.Unix()
	}
	return s
}

// Insert - create a spot
func (client *Client) Insert(insert action.Insert, submitted time.Time) (*parking.ActionReply, error) {
	args := parking.InsertArguments{
		Signed: client.signed(submitted),
		Insert: insert,
	}
	return client.push("Parking.Insert", &args, insert)
}

// Erase - remove a spot
func (client *Client) Erase(erase action.Erase, submitted time.Time) (*parking.ActionReply, error) {
	args := parking.EraseArguments{
		Signed: client.signed(submitted),
		Erase:  erase,
	}
	return client.push("Parking.Erase", &args, erase)
}

// ModAvail - buy a time slot on a spot
func (client *Client) ModAvail(modAvail action.ModAvail, submitted time.Time) (*parking.ActionReply, error) {
	args := parking.ModAvailArguments{
		Signed:   client.signed(submitted),
		ModAvail: modAvail,
	}
	return client.push("Parking.ModAvail", &args, modAvail)
}

// Notify - relay a message to a user
func (client *Client) Notify(notify action.Notify, submitted time.Time) (*parking.ActionReply, error) {
	args := parking.NotifyArguments{
		Signed: client.signed(submitted),
		Notify: notify,
	}
	return client.push("Parking.Notify", &args, notify)
}

// only the action data is shown, never the credentials
func (client *Client) push(method string, args interface{}, data interface{}) (*parking.ActionReply, error) {
	client.printJson(method+" Request", data)

	var reply parking.ActionReply
	if err := client.client.Call(method, args, &reply); err != nil {
		return nil, err
	}

	client.printJson(method+" Reply", reply)

	return &reply, nil
}
