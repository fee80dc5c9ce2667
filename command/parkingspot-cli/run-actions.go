// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/registry"
)

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkName(c, "user")
	if nil != err {
		return err
	}
	owner, err := checkName(c, "owner")
	if nil != err {
		return err
	}
	spotId, err := checkSpotId(c)
	if nil != err {
		return err
	}
	submitted, err := checkTime(c.String("submitted"))
	if nil != err {
		return err
	}

	insert := action.Insert{
		User:   user,
		SpotId: spotId,
		ZoneId: c.Uint64("zone"),
		Owner:  owner,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "insert spot: %d  zone: %d  owner: %s\n", insert.SpotId, insert.ZoneId, insert.Owner)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Insert(insert, submitted)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runErase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkName(c, "user")
	if nil != err {
		return err
	}
	spotId, err := checkSpotId(c)
	if nil != err {
		return err
	}
	submitted, err := checkTime(c.String("submitted"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Erase(action.Erase{
		User:   user,
		SpotId: spotId,
		ZoneId: c.Uint64("zone"),
	}, submitted)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runModAvail(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkName(c, "user")
	if nil != err {
		return err
	}
	buyer, err := checkName(c, "buyer")
	if nil != err {
		return err
	}
	seller, err := checkName(c, "seller")
	if nil != err {
		return err
	}
	spotId, err := checkSpotId(c)
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c.String("quantity"))
	if nil != err {
		return err
	}
	slotTime, err := checkTime(c.String("time"))
	if nil != err {
		return err
	}
	if slotTime.IsZero() {
		slotTime = time.Now()
	}
	submitted, err := checkTime(c.String("submitted"))
	if nil != err {
		return err
	}

	modAvail := action.ModAvail{
		User:     user,
		Quantity: quantity,
		SpotId:   spotId,
		ZoneId:   c.Uint64("zone"),
		TimeCode: registry.TimeCodeFor(slotTime),
		Buyer:    buyer,
		Seller:   seller,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buy spot: %d  slot: %d  for: %s\n", modAvail.SpotId, modAvail.TimeCode, modAvail.Quantity)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ModAvail(modAvail, submitted)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runNotify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkName(c, "user")
	if nil != err {
		return err
	}
	message := c.String("message")
	if "" == message {
		return fmt.Errorf("message is required")
	}
	submitted, err := checkTime(c.String("submitted"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Notify(action.Notify{
		User: user,
		Msg:  message,
	}, submitted)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
