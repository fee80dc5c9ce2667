// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/fault"
)

// ModAvail - buyer pays seller for a time slot and takes the spot
//
// the checks run in a fixed order and any failure aborts the
// action; a missing spot is only reported and no payment is made
func (r *Registry) ModAvail(ctx *Context, args action.ModAvail) error {
	err := ctx.RequireAuth(args.User)
	if nil != err {
		return err
	}

	if !ctx.Now().Before(r.policy.Deadline(ctx.Submitted())) {
		r.log.Warnf("modavail: spot: %d  now: %s  past deadline", args.SpotId, ctx.Now())
		return fault.TransferTimeExpired
	}
	if args.Quantity.Amount <= 0 {
		return fault.InvalidAmount
	}
	if args.Quantity.Symbol != r.symbol {
		return fault.IncorrectCurrencyType
	}

	spot, found := r.Spot(ctx.Store(), args.SpotId)
	if !found {
		ctx.Print("DOES NOT EXIST! Parking Spot: %d in Zone: %d", args.SpotId, args.ZoneId)
		r.log.Warnf("modavail: spot: %d does not exist", args.SpotId)
		return nil
	}

	if !spot.HasTimeCode(args.TimeCode) && len(spot.TimeSlots) >= MaximumTimeSlots {
		return fault.TimeSlotCountTooLarge
	}

	// the transfer is made under buyer@active
	err = ctx.RequireAuth(args.Buyer)
	if nil != err {
		r.log.Warnf("modavail: spot: %d  buyer: %s  did not authorise", args.SpotId, args.Buyer)
		return err
	}

	err = r.payment.Transfer(args.Buyer, args.Seller, args.Quantity, paymentMemo, account.ActiveOf(args.Buyer))
	if nil != err {
		r.log.Errorf("modavail: spot: %d  transfer: %s from: %s to: %s  error: %s", args.SpotId, args.Quantity, args.Buyer, args.Seller, err)
		return err
	}

	if !spot.HasTimeCode(args.TimeCode) {
		spot.TimeSlots = append(spot.TimeSlots, args.TimeCode)
	}
	spot.Available = false
	spot.Owner = args.Buyer
	r.putSpot(ctx.Store(), spot)

	ctx.Print("Parking Spot: %d in Zone: %d is owned by %s for: %d. Transaction on %d", args.SpotId, args.ZoneId, args.Buyer, args.TimeCode, ctx.Now().Unix())
	r.log.Infof("modavail: spot: %d  owner: %s  time code: %d", args.SpotId, args.Buyer, args.TimeCode)

	return r.sendSummary(ctx, args.User, changedMessage)
}
