// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/registry"
)

func TestSpotPackUnpack(t *testing.T) {
	spots := []registry.Spot{
		{SpotId: 1, ZoneId: 5, TimeSlots: []uint32{}, Available: true, Owner: alice},
		{SpotId: 2, ZoneId: 0, TimeSlots: []uint32{40, 1546300800, 0xffffffff}, Available: false, Owner: bob},
		{SpotId: 0xffffffffffffffff, ZoneId: 0xffffffffffffffff, TimeSlots: []uint32{900}, Available: true, Owner: contract},
	}

	for i, spot := range spots {
		buffer := spot.Pack()
		unpacked, err := registry.UnpackSpot(spot.SpotId, buffer)
		assert.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, &spots[i], unpacked, "%d: round trip", i)
	}
}

func TestSpotPackedLayout(t *testing.T) {
	spot := registry.Spot{SpotId: 1, ZoneId: 5, TimeSlots: []uint32{40}, Available: true, Owner: alice}
	expected := []byte{
		0x05,                                           // zone
		0x01,                                           // available
		0x34, 0x5c, 0x85, 0x00, 0x00, 0x00, 0x00, 0x00, // alice
		0x01, // count
		0x28, // 40
	}
	assert.Equal(t, expected, spot.Pack())
}

func TestSpotUnpackErrors(t *testing.T) {
	spot := registry.Spot{SpotId: 1, ZoneId: 300, TimeSlots: []uint32{40, 41}, Available: true, Owner: alice}
	buffer := spot.Pack()

	for n := 0; n < len(buffer); n += 1 {
		_, err := registry.UnpackSpot(1, buffer[:n])
		assert.NotNil(t, err, "truncated at: %d", n)
	}

	_, err := registry.UnpackSpot(1, append(buffer, 0x00))
	assert.Equal(t, fault.SpotRecordTrailingData, err)
}

func TestSpotKey(t *testing.T) {
	key := registry.SpotKey(contract, 258)
	assert.Equal(t, 16, len(key))

	scope, id, err := registry.SplitSpotKey(key)
	assert.Nil(t, err)
	assert.Equal(t, contract, scope)
	assert.Equal(t, uint64(258), id)

	_, _, err = registry.SplitSpotKey(key[1:])
	assert.Equal(t, fault.SpotRecordTruncated, err)
}

func TestHasTimeCode(t *testing.T) {
	spot := registry.Spot{TimeSlots: []uint32{1, 2, 3}}
	assert.True(t, spot.HasTimeCode(2))
	assert.False(t, spot.HasTimeCode(4))
}

func TestTimeCode(t *testing.T) {
	base := time.Unix(1546300800, 0)
	assert.Equal(t, uint32(1546300800), registry.TimeCodeFor(base))
	assert.Equal(t, uint32(1546300800), registry.TimeCodeFor(base.Add(14*time.Minute+59*time.Second)))
	assert.Equal(t, uint32(1546301700), registry.TimeCodeFor(base.Add(15*time.Minute)))
	assert.Equal(t, uint32(0), registry.TimeCodeFor(time.Unix(-5, 0)))
	assert.Equal(t, base.UTC(), registry.TimeOfCode(1546300800))
}
