// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/deadline"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/registry"
)

var oneVTP = currency.Asset{Amount: 10000, Symbol: currency.VTP}

func (f *fixture) spot(t *testing.T, spotId uint64) *registry.Spot {
	spot, found := f.reg.Spot(f.store, spotId)
	if !found {
		t.Fatalf("spot: %d not found", spotId)
	}
	return spot
}

func (f *fixture) insert(t *testing.T, spotId uint64, zoneId uint64, owner account.Name) {
	ctx := f.context(0, alice)
	err := f.reg.Insert(ctx, action.Insert{User: alice, SpotId: spotId, ZoneId: zoneId, Owner: owner})
	if nil != err {
		t.Fatalf("insert error: %s", err)
	}
}

func modAvail(spotId uint64, timeCode uint32, quantity currency.Asset) action.ModAvail {
	return action.ModAvail{
		User:     alice,
		Quantity: quantity,
		SpotId:   spotId,
		ZoneId:   5,
		TimeCode: timeCode,
		Buyer:    bob,
		Seller:   alice,
	}
}

func TestInsertCreatesAvailableSpot(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	ctx := f.context(0, alice)
	err := f.reg.Insert(ctx, action.Insert{User: alice, SpotId: 1, ZoneId: 5, TimeCode: 1234, Owner: carol})
	assert.Nil(t, err, "insert")

	spot := f.spot(t, 1)
	assert.Equal(t, uint64(5), spot.ZoneId)
	assert.True(t, spot.Available, "available")
	assert.Equal(t, carol, spot.Owner)
	assert.Equal(t, 0, len(spot.TimeSlots), "time code must not be stored")

	assert.Equal(t, []string{"Parking Spot: 1 in Zone: 5 is created on: 1546300800"}, ctx.Console())

	inline := ctx.TakeInline()
	assert.Equal(t, 1, len(inline), "summary")
	assert.Equal(t, action.NotifyName, inline[0].Name)
	assert.Equal(t, contract, inline[0].Account)
	assert.Equal(t, []account.PermissionLevel{account.ActiveOf(contract)}, inline[0].Authorisation)

	var n action.Notify
	assert.Nil(t, inline[0].Unpack(&n))
	assert.Equal(t, alice, n.User)
	assert.Equal(t, "alice successfully inserted parking spot", n.Msg)
}

func TestInsertExistingIsUnchanged(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)
	before := f.store.snapshot()

	ctx := f.context(0, alice)
	err := f.reg.Insert(ctx, action.Insert{User: alice, SpotId: 1, ZoneId: 9, Owner: bob})
	assert.Nil(t, err, "duplicate insert is not an error")
	assert.Equal(t, before, f.store.snapshot(), "table changed")
	assert.Equal(t, []string{"ALREADY EXISTS! Parking Spot: 1 in Zone: 9"}, ctx.Console())
	assert.Equal(t, 0, len(ctx.TakeInline()), "no summary")
}

func TestInsertRequiresUser(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	ctx := f.context(0, bob)
	err := f.reg.Insert(ctx, action.Insert{User: alice, SpotId: 1, ZoneId: 5, Owner: alice})
	assert.Equal(t, fault.MissingAuthority, err)
	assert.Equal(t, 0, len(f.store), "table changed")
}

func TestEraseMissingIsUnchanged(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)
	before := f.store.snapshot()

	ctx := f.context(0, alice)
	err := f.reg.Erase(ctx, action.Erase{User: alice, SpotId: 2, ZoneId: 5})
	assert.Nil(t, err)
	assert.Equal(t, before, f.store.snapshot(), "table changed")
	assert.Equal(t, []string{"DOES NOT EXIST! Parking Spot: 2 in Zone: 5"}, ctx.Console())
	assert.Equal(t, 0, len(ctx.TakeInline()), "no summary")
}

func TestEraseRemovesSpot(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)

	ctx := f.context(time.Minute, bob)
	err := f.reg.Erase(ctx, action.Erase{User: bob, SpotId: 1, ZoneId: 5})
	assert.Nil(t, err)

	_, found := f.reg.Spot(f.store, 1)
	assert.False(t, found, "spot still present")
	assert.Equal(t, []string{"REMOVED Parking Spot: 1 in Zone: 5 on: 1546300860"}, ctx.Console())

	inline := ctx.TakeInline()
	assert.Equal(t, 1, len(inline), "summary")
	var n action.Notify
	assert.Nil(t, inline[0].Unpack(&n))
	assert.Equal(t, "bob successfully removed parking spot", n.Msg)

	err = f.reg.Erase(f.context(0, carol), action.Erase{User: alice, SpotId: 1})
	assert.Equal(t, fault.MissingAuthority, err)
}

func TestModAvailTransfersOwnership(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)

	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(nil).Times(1)

	ctx := f.context(time.Minute, alice, bob)
	err := f.reg.ModAvail(ctx, modAvail(1, 40, oneVTP))
	assert.Nil(t, err)

	spot := f.spot(t, 1)
	assert.False(t, spot.Available, "available")
	assert.Equal(t, bob, spot.Owner)
	assert.Equal(t, []uint32{40}, spot.TimeSlots)
	assert.Equal(t, []string{"Parking Spot: 1 in Zone: 5 is owned by bob for: 40. Transaction on 1546300860"}, ctx.Console())

	inline := ctx.TakeInline()
	assert.Equal(t, 1, len(inline), "summary")
	var n action.Notify
	assert.Nil(t, inline[0].Unpack(&n))
	assert.Equal(t, "alice successfully changed parking spot availability", n.Msg)
}

func TestModAvailNeverDuplicatesTimeCode(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)

	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(nil).Times(6)

	for _, tc := range []uint32{40, 41, 40, 42, 41, 40} {
		err := f.reg.ModAvail(f.context(0, alice, bob), modAvail(1, tc, oneVTP))
		assert.Nil(t, err)
	}
	assert.Equal(t, []uint32{40, 41, 42}, f.spot(t, 1).TimeSlots)
}

func TestModAvailHardFailures(t *testing.T) {
	items := []struct {
		title    string
		offset   time.Duration
		signer   account.Name
		quantity currency.Asset
		err      error
	}{
		{"unauthorised", 0, bob, oneVTP, fault.MissingAuthority},
		{"at deadline", time.Hour, alice, oneVTP, fault.TransferTimeExpired},
		{"after deadline", 2 * time.Hour, alice, oneVTP, fault.TransferTimeExpired},
		{"zero amount", 0, alice, currency.Asset{Amount: 0, Symbol: currency.VTP}, fault.InvalidAmount},
		{"negative amount", 0, alice, currency.Asset{Amount: -1, Symbol: currency.VTP}, fault.InvalidAmount},
		{"wrong code", 0, alice, currency.Asset{Amount: 10000, Symbol: currency.Symbol{Precision: 4, Code: "EOS"}}, fault.IncorrectCurrencyType},
		{"wrong precision", 0, alice, currency.Asset{Amount: 1000, Symbol: currency.Symbol{Precision: 3, Code: "VTP"}}, fault.IncorrectCurrencyType},
		{"expired before amount", 2 * time.Hour, alice, currency.Asset{Amount: 0, Symbol: currency.VTP}, fault.TransferTimeExpired},
	}

	for _, item := range items {
		f := newFixture(t)
		f.insert(t, 1, 5, alice)
		before := f.store.snapshot()

		// no transfer may be requested
		ctx := f.context(item.offset, item.signer)
		err := f.reg.ModAvail(ctx, modAvail(1, 40, item.quantity))
		assert.Equal(t, item.err, err, item.title)
		assert.Equal(t, before, f.store.snapshot(), "%s: table changed", item.title)
		assert.Equal(t, 0, len(ctx.TakeInline()), "%s: summary sent", item.title)
		f.ctl.Finish()
	}
}

func TestModAvailRequiresBuyer(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)
	before := f.store.snapshot()

	// no transfer may be requested
	ctx := f.context(0, alice)
	err := f.reg.ModAvail(ctx, modAvail(1, 40, oneVTP))
	assert.Equal(t, fault.MissingAuthority, err)
	assert.Equal(t, before, f.store.snapshot(), "table changed")
	assert.Equal(t, 0, len(ctx.TakeInline()), "summary sent")
	assert.Equal(t, alice, f.spot(t, 1).Owner, "owner changed")
}

func TestModAvailTimeSlotLimit(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	slots := make([]uint32, registry.MaximumTimeSlots)
	for i := range slots {
		slots[i] = uint32(i + 1)
	}
	full := &registry.Spot{SpotId: 1, ZoneId: 5, TimeSlots: slots, Available: true, Owner: alice}
	f.store.Put(registry.SpotKey(contract, 1), full.Pack())
	before := f.store.snapshot()

	// a new time code does not fit
	ctx := f.context(0, alice, bob)
	err := f.reg.ModAvail(ctx, modAvail(1, 0, oneVTP))
	assert.Equal(t, fault.TimeSlotCountTooLarge, err)
	assert.Equal(t, before, f.store.snapshot(), "table changed")

	// an existing one still does
	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(nil).Times(1)
	err = f.reg.ModAvail(f.context(0, alice, bob), modAvail(1, 7, oneVTP))
	assert.Nil(t, err)
	spot := f.spot(t, 1)
	assert.Equal(t, registry.MaximumTimeSlots, len(spot.TimeSlots))
	assert.Equal(t, bob, spot.Owner)
}

func TestModAvailMissingSpotMakesNoTransfer(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	ctx := f.context(0, alice)
	err := f.reg.ModAvail(ctx, modAvail(7, 40, oneVTP))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(f.store))
	assert.Equal(t, []string{"DOES NOT EXIST! Parking Spot: 7 in Zone: 5"}, ctx.Console())
}

func TestModAvailRejectedPayment(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)
	before := f.store.snapshot()

	rejected := errors.New("overdrawn balance")
	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(rejected).Times(1)

	ctx := f.context(0, alice, bob)
	err := f.reg.ModAvail(ctx, modAvail(1, 40, oneVTP))
	assert.Equal(t, rejected, err)
	assert.Equal(t, before, f.store.snapshot(), "table changed")
	assert.Equal(t, 0, len(ctx.TakeInline()), "summary sent")
}

func TestModAvailSubmissionDeadline(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.reg = registry.New(logger.New(logCategory), contract, currency.VTP, f.payment, deadline.NewSliding(time.Hour))
	f.insert(t, 1, 5, alice)

	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(nil).Times(1)

	// long after construction but within the hour after submission
	submitted := startTime.Add(5 * time.Hour)
	ctx := registry.NewContext(signatories{alice, bob}, f.store, submitted.Add(59*time.Minute), submitted)
	err := f.reg.ModAvail(ctx, modAvail(1, 40, oneVTP))
	assert.Nil(t, err)

	ctx = registry.NewContext(signatories{alice}, f.store, submitted.Add(time.Hour), submitted)
	err = f.reg.ModAvail(ctx, modAvail(1, 41, oneVTP))
	assert.Equal(t, fault.TransferTimeExpired, err)
}

func TestNotifyRequiresSelf(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	a, err := action.New(contract, action.NotifyName, nil, action.Notify{User: alice, Msg: "hello"})
	assert.Nil(t, err)

	ctx := f.context(0, alice)
	err = f.reg.Apply(ctx, a)
	assert.Equal(t, fault.MissingAuthority, err)
	assert.Equal(t, 0, len(ctx.Recipients()))

	ctx = f.context(0, contract)
	err = f.reg.Apply(ctx, a)
	assert.Nil(t, err)
	assert.Equal(t, []registry.Receipt{{Recipient: alice, Action: action.NotifyName, Data: a.Data}}, ctx.Recipients())

	// repeated delivery of the same copy is collapsed
	err = f.reg.Apply(ctx, a)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(ctx.Recipients()))
}

func TestApplyDispatch(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	a, err := action.New(contract, action.InsertName, nil, action.Insert{User: alice, SpotId: 3, ZoneId: 1, Owner: alice})
	assert.Nil(t, err)

	err = f.reg.Apply(f.context(0, alice), a)
	assert.Nil(t, err)
	f.spot(t, 3)

	a.Account = carol
	err = f.reg.Apply(f.context(0, alice), a)
	assert.Equal(t, fault.WrongContract, err)

	a.Account = contract
	a.Name = mustName("release")
	err = f.reg.Apply(f.context(0, alice), a)
	assert.Equal(t, fault.UnknownAction, err)

	a.Name = action.EraseName
	a.Data = []byte(`{"user": 17}`)
	err = f.reg.Apply(f.context(0, alice), a)
	assert.NotNil(t, err, "bad arguments")
}

func TestEndToEndScenario(t *testing.T) {
	f := newFixture(t)
	defer f.ctl.Finish()

	f.insert(t, 1, 5, alice)
	assert.Equal(t, &registry.Spot{SpotId: 1, ZoneId: 5, TimeSlots: []uint32{}, Available: true, Owner: alice}, f.spot(t, 1))

	f.payment.EXPECT().Transfer(bob, alice, oneVTP, "payment from buyer", account.ActiveOf(bob)).Return(nil).Times(1)
	err := f.reg.ModAvail(f.context(10*time.Minute, alice, bob), modAvail(1, 40, oneVTP))
	assert.Nil(t, err)
	assert.Equal(t, &registry.Spot{SpotId: 1, ZoneId: 5, TimeSlots: []uint32{40}, Available: false, Owner: bob}, f.spot(t, 1))

	err = f.reg.Erase(f.context(20*time.Minute, alice), action.Erase{User: alice, SpotId: 1, ZoneId: 5})
	assert.Nil(t, err)
	_, found := f.reg.Spot(f.store, 1)
	assert.False(t, found)
}
