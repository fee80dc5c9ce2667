// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/util"
)

// MaximumTimeSlots is the most time slots one spot can hold
const MaximumTimeSlots = 65535

const (
	flagAvailable = 0x01
	spotKeyLength = 16
)

// Spot - a parking spot record
type Spot struct {
	SpotId    uint64       `json:"spot_id"`
	ZoneId    uint64       `json:"zone_id"`
	TimeSlots []uint32     `json:"time_slots"`
	Available bool         `json:"available"`
	Owner     account.Name `json:"owner"`
}

// SpotKey - scope ++ spot id, both big endian
func SpotKey(scope account.Name, spotId uint64) []byte {
	key := make([]byte, spotKeyLength)
	binary.BigEndian.PutUint64(key[:8], uint64(scope))
	binary.BigEndian.PutUint64(key[8:], spotId)
	return key
}

// SplitSpotKey - inverse of SpotKey
func SplitSpotKey(key []byte) (account.Name, uint64, error) {
	if spotKeyLength != len(key) {
		return 0, 0, fault.SpotRecordTruncated
	}
	scope := account.Name(binary.BigEndian.Uint64(key[:8]))
	return scope, binary.BigEndian.Uint64(key[8:]), nil
}

// Pack - binary form of a spot, the spot id is held in the key
//
//   zone id(varint) ++ flags ++ owner(uint64) ++ count(varint) ++ [ time code(varint) ]
func (spot *Spot) Pack() []byte {
	buffer := util.ToVarint64(spot.ZoneId)

	flags := byte(0)
	if spot.Available {
		flags |= flagAvailable
	}
	buffer = append(buffer, flags)
	buffer = append(buffer, spot.Owner.Bytes()...)

	buffer = util.AppendVarint64(buffer, uint64(len(spot.TimeSlots)))
	for _, t := range spot.TimeSlots {
		buffer = util.AppendVarint64(buffer, uint64(t))
	}
	return buffer
}

// UnpackSpot - decode the binary form
func UnpackSpot(spotId uint64, buffer []byte) (*Spot, error) {
	zoneId, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.SpotRecordTruncated
	}

	if len(buffer) < n+1+8 {
		return nil, fault.SpotRecordTruncated
	}
	flags := buffer[n]
	n += 1

	owner, err := account.NameFromBytes(buffer[n : n+8])
	if nil != err {
		return nil, err
	}
	n += 8

	if n >= len(buffer) {
		return nil, fault.SpotRecordTruncated
	}
	count, m := util.ClippedVarint64(buffer[n:], 0, MaximumTimeSlots)
	if 0 == m {
		return nil, fault.TimeSlotCountTooLarge
	}
	n += m

	slots := make([]uint32, 0, count)
	for i := 0; i < count; i += 1 {
		t, m := util.FromVarint64(buffer[n:])
		if 0 == m || t > math.MaxUint32 {
			return nil, fault.SpotRecordTruncated
		}
		slots = append(slots, uint32(t))
		n += m
	}

	if n != len(buffer) {
		return nil, fault.SpotRecordTrailingData
	}

	return &Spot{
		SpotId:    spotId,
		ZoneId:    zoneId,
		TimeSlots: slots,
		Available: 0 != flags&flagAvailable,
		Owner:     owner,
	}, nil
}

// HasTimeCode - linear scan of the time slots
func (spot *Spot) HasTimeCode(timeCode uint32) bool {
	for _, t := range spot.TimeSlots {
		if t == timeCode {
			return true
		}
	}
	return false
}
