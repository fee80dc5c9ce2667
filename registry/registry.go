// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the parking spot contract
//
// spots are created by insert, removed by erase and sold for a time
// slot by modavail; every successful change sends a summary to the
// caller through the notify action
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/deadline"
	"github.com/bitmark-inc/parkingspot/fault"
)

// summary messages appended to the caller's name
const (
	insertedMessage = " successfully inserted parking spot"
	removedMessage  = " successfully removed parking spot"
	changedMessage  = " successfully changed parking spot availability"
	paymentMemo     = "payment from buyer"
)

// Registry - the contract deployed as self
//
// spot records are scoped by self
type Registry struct {
	log     *logger.L
	self    account.Name
	symbol  currency.Symbol
	payment PaymentGateway
	policy  deadline.Policy
}

// New - create the registry
func New(log *logger.L, self account.Name, symbol currency.Symbol, payment PaymentGateway, policy deadline.Policy) *Registry {
	return &Registry{
		log:     log,
		self:    self,
		symbol:  symbol,
		payment: payment,
		policy:  policy,
	}
}

// Self - the contract account
func (r *Registry) Self() account.Name {
	return r.self
}

// Symbol - the accepted currency
func (r *Registry) Symbol() currency.Symbol {
	return r.symbol
}

// Policy - the payment deadline policy
func (r *Registry) Policy() deadline.Policy {
	return r.policy
}

// Apply - decode and run one action
func (r *Registry) Apply(ctx *Context, a *action.Action) error {
	if a.Account != r.self {
		r.log.Warnf("action: %s for contract: %s", a.Name, a.Account)
		return fault.WrongContract
	}

	previous := ctx.current
	ctx.current = a
	defer func() {
		ctx.current = previous
	}()

	switch a.Name {

	case action.InsertName:
		var args action.Insert
		err := a.Unpack(&args)
		if nil != err {
			return err
		}
		return r.Insert(ctx, args)

	case action.EraseName:
		var args action.Erase
		err := a.Unpack(&args)
		if nil != err {
			return err
		}
		return r.Erase(ctx, args)

	case action.ModAvailName:
		var args action.ModAvail
		err := a.Unpack(&args)
		if nil != err {
			return err
		}
		return r.ModAvail(ctx, args)

	case action.NotifyName:
		var args action.Notify
		err := a.Unpack(&args)
		if nil != err {
			return err
		}
		return r.Notify(ctx, args)

	default:
		r.log.Warnf("unknown action: %s", a.Name)
		return fault.UnknownAction
	}
}

// Spot - read one spot
func (r *Registry) Spot(reader RecordReader, spotId uint64) (*Spot, bool) {
	buffer, found := reader.Get(SpotKey(r.self, spotId))
	if !found {
		return nil, false
	}
	spot, err := UnpackSpot(spotId, buffer)
	if nil != err {
		r.log.Criticalf("spot: %d  record: %x  error: %s", spotId, buffer, err)
		logger.Panicf("registry: corrupt spot: %d  error: %s", spotId, err)
	}
	return spot, true
}

func (r *Registry) putSpot(store RecordStore, spot *Spot) {
	store.Put(SpotKey(r.self, spot.SpotId), spot.Pack())
}

// queue notify(user, user ++ message) authorised by self
func (r *Registry) sendSummary(ctx *Context, user account.Name, message string) error {
	summary := action.Notify{
		User: user,
		Msg:  user.String() + message,
	}
	a, err := action.New(r.self, action.NotifyName, []account.PermissionLevel{account.ActiveOf(r.self)}, summary)
	if nil != err {
		return err
	}
	ctx.SendInline(a)
	return nil
}
