// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"
)

// TimeSlot - the length of one reservable slot
const TimeSlot = 15 * time.Minute

// TimeCodeFor - epoch seconds of the start of the slot containing t
func TimeCodeFor(t time.Time) uint32 {
	seconds := t.Unix()
	if seconds < 0 {
		return 0
	}
	slot := int64(TimeSlot / time.Second)
	return uint32(seconds - seconds%slot)
}

// TimeOfCode - start of the slot as a time
func TimeOfCode(timeCode uint32) time.Time {
	return time.Unix(int64(timeCode), 0).UTC()
}
