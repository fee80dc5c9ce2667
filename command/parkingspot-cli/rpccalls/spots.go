// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/rpc/parking"
)

// Spot - fetch one spot
func (client *Client) Spot(spotId uint64) (*registry.Spot, error) {
	args := parking.SpotArguments{
		SpotId: spotId,
	}

	var reply parking.SpotReply
	if err := client.client.Call("Parking.Spot", &args, &reply); err != nil {
		return nil, err
	}

	return reply.Spot, nil
}

// SpotsData - parameters for a spots listing
type SpotsData struct {
	Start uint64
	Count int
	Zone  *uint64
}

// Spots - fetch one page of spots
func (client *Client) Spots(spotsConfig *SpotsData) (*parking.SpotsReply, error) {
	args := parking.SpotsArguments{
		Start: spotsConfig.Start,
		Count: spotsConfig.Count,
		Zone:  spotsConfig.Zone,
	}

	client.printJson("Spots Request", args)

	var reply parking.SpotsReply
	if err := client.client.Call("Parking.Spots", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Spots Reply", reply)

	return &reply, nil
}
