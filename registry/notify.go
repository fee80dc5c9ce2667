// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/parkingspot/action"
)

// Notify - relay a copy of the message to the user
//
// only the contract itself may send this
func (r *Registry) Notify(ctx *Context, args action.Notify) error {
	err := ctx.RequireAuth(r.self)
	if nil != err {
		return err
	}
	ctx.RequireRecipient(args.User)
	r.log.Debugf("notify: %s: %q", args.User, args.Msg)
	return nil
}
