// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/parkingspot/command/parkingspot-cli/rpccalls"
	"github.com/bitmark-inc/parkingspot/registry"
)

func runSpot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	spotId, err := checkSpotId(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	spot, err := client.Spot(spotId)
	if nil != err {
		return err
	}

	printJson(m.w, spot)
	return nil
}

func runSpots(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	zone, err := checkZone(c.String("zone"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Spots(&rpccalls.SpotsData{
		Start: c.Uint64("start"),
		Count: c.Int("count"),
		Zone:  zone,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

type timeCodeReply struct {
	Time     time.Time `json:"time"`
	TimeCode uint32    `json:"time_code"`
	Ends     time.Time `json:"ends"`
}

// local only, no connection is made
func runTimeCode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var code uint32
	if c.IsSet("code") {
		code = uint32(c.Uint64("code"))
	} else {
		t, err := checkTime(c.String("time"))
		if nil != err {
			return err
		}
		if t.IsZero() {
			t = time.Now()
		}
		code = registry.TimeCodeFor(t)
	}

	start := registry.TimeOfCode(code)
	printJson(m.w, timeCodeReply{
		Time:     start,
		TimeCode: code,
		Ends:     start.Add(registry.TimeSlot),
	})
	return nil
}
