// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/parkingspot/action"
)

// Erase - remove a spot
//
// a missing spot is only reported
func (r *Registry) Erase(ctx *Context, args action.Erase) error {
	err := ctx.RequireAuth(args.User)
	if nil != err {
		return err
	}

	if _, found := r.Spot(ctx.Store(), args.SpotId); !found {
		ctx.Print("DOES NOT EXIST! Parking Spot: %d in Zone: %d", args.SpotId, args.ZoneId)
		r.log.Warnf("erase: spot: %d does not exist", args.SpotId)
		return nil
	}

	ctx.Store().Delete(SpotKey(r.self, args.SpotId))

	ctx.Print("REMOVED Parking Spot: %d in Zone: %d on: %d", args.SpotId, args.ZoneId, ctx.Now().Unix())
	r.log.Infof("erase: spot: %d  zone: %d", args.SpotId, args.ZoneId)

	return r.sendSummary(ctx, args.User, removedMessage)
}
