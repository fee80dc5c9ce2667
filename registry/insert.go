// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/parkingspot/action"
)

// Insert - create an available spot
//
// an existing spot is left unchanged and only reported
func (r *Registry) Insert(ctx *Context, args action.Insert) error {
	err := ctx.RequireAuth(args.User)
	if nil != err {
		return err
	}

	if _, found := r.Spot(ctx.Store(), args.SpotId); found {
		ctx.Print("ALREADY EXISTS! Parking Spot: %d in Zone: %d", args.SpotId, args.ZoneId)
		r.log.Warnf("insert: spot: %d already exists", args.SpotId)
		return nil
	}

	spot := &Spot{
		SpotId:    args.SpotId,
		ZoneId:    args.ZoneId,
		TimeSlots: []uint32{},
		Available: true,
		Owner:     args.Owner,
	}
	r.putSpot(ctx.Store(), spot)

	ctx.Print("Parking Spot: %d in Zone: %d is created on: %d", args.SpotId, args.ZoneId, ctx.Now().Unix())
	r.log.Infof("insert: spot: %d  zone: %d  owner: %s", args.SpotId, args.ZoneId, args.Owner)

	return r.sendSummary(ctx, args.User, insertedMessage)
}
