// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	"github.com/bitmark-inc/parkingspot/fault"
)

// Active - the default permission of every account
const Active = Name(0x3232eda800000000)

// PermissionLevel - an account acting under one of its permissions
type PermissionLevel struct {
	Actor      Name `json:"actor"`
	Permission Name `json:"permission"`
}

// ActiveOf - actor@active
func ActiveOf(actor Name) PermissionLevel {
	return PermissionLevel{
		Actor:      actor,
		Permission: Active,
	}
}

// ParsePermissionLevel - from "actor@permission" or just "actor"
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	parts := strings.Split(s, "@")
	if len(parts) > 2 {
		return PermissionLevel{}, fault.InvalidAccountName
	}

	actor, err := NameFromString(parts[0])
	if nil != err {
		return PermissionLevel{}, err
	}
	if 1 == len(parts) {
		return ActiveOf(actor), nil
	}

	permission, err := NameFromString(parts[1])
	if nil != err {
		return PermissionLevel{}, err
	}
	return PermissionLevel{
		Actor:      actor,
		Permission: permission,
	}, nil
}

func (p PermissionLevel) String() string {
	return p.Actor.String() + "@" + p.Permission.String()
}
