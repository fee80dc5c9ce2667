// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/parkingspot/fault"
)

// Limit - wait for one token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - wait for count tokens
//
// a count outside 1..maximumCount still costs one token and is rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter.ReserveN(time.Now(), count))
}

func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
