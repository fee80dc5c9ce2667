// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parking

import (
	"math"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/auth"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/host"
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/rpc/ratelimit"
	"github.com/bitmark-inc/parkingspot/storage"
)

const (
	rateLimitParking = 200
	rateBurstParking = 100

	maximumSpotsCount = 100
)

// Pusher - runs actions
type Pusher interface {
	Push(authority registry.Authority, a *action.Action, submitted time.Time) (*host.Trace, error)
}

// Verifier - turns credentials into signatories
type Verifier interface {
	Verify(credentials []auth.Credential) (auth.Signatories, error)
}

// Parking - type for RPC calls
type Parking struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Runtime  Pusher
	Keyring  Verifier
	Registry *registry.Registry
	Pool     *storage.PoolHandle
}

// New - create the Parking service
func New(log *logger.L, runtime Pusher, keyring Verifier, reg *registry.Registry, pool *storage.PoolHandle) *Parking {
	return &Parking{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitParking, rateBurstParking),
		Runtime:  runtime,
		Keyring:  keyring,
		Registry: reg,
		Pool:     pool,
	}
}

// Signed - common part of every mutating request
//
// Submitted is a Unix time in seconds, zero means the time the
// request was received
type Signed struct {
	Credentials []auth.Credential `json:"credentials"`
	Submitted   int64             `json:"submitted"`
}

// ActionReply - result of a pushed action
type ActionReply = host.Trace

// ---

// InsertArguments - arguments for Parking.Insert
type InsertArguments struct {
	Signed
	action.Insert
}

// Insert - create a spot
func (p *Parking) Insert(arguments *InsertArguments, reply *ActionReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return p.push(arguments.Signed, action.InsertName, arguments.User, arguments.Insert, reply)
}

// ---

// EraseArguments - arguments for Parking.Erase
type EraseArguments struct {
	Signed
	action.Erase
}

// Erase - remove a spot
func (p *Parking) Erase(arguments *EraseArguments, reply *ActionReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return p.push(arguments.Signed, action.EraseName, arguments.User, arguments.Erase, reply)
}

// ---

// ModAvailArguments - arguments for Parking.ModAvail
type ModAvailArguments struct {
	Signed
	action.ModAvail
}

// ModAvail - pay for a time slot and take the spot
func (p *Parking) ModAvail(arguments *ModAvailArguments, reply *ActionReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return p.push(arguments.Signed, action.ModAvailName, arguments.User, arguments.ModAvail, reply)
}

// ---

// NotifyArguments - arguments for Parking.Notify
type NotifyArguments struct {
	Signed
	action.Notify
}

// Notify - relay a message, only the contract account may do this
func (p *Parking) Notify(arguments *NotifyArguments, reply *ActionReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	return p.push(arguments.Signed, action.NotifyName, p.Registry.Self(), arguments.Notify, reply)
}

// verify credentials then run one action authorised by actor@active
func (p *Parking) push(signed Signed, name account.Name, actor account.Name, arguments interface{}, reply *ActionReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if actor.IsEmpty() {
		return fault.ZeroAccountNameNotAllowed
	}

	signatories, err := p.Keyring.Verify(signed.Credentials)
	if nil != err {
		p.Log.Warnf("%s: credentials rejected: %s", name, err)
		return err
	}

	a, err := action.New(p.Registry.Self(), name, []account.PermissionLevel{account.ActiveOf(actor)}, arguments)
	if nil != err {
		return err
	}

	submitted := time.Time{}
	if 0 != signed.Submitted {
		submitted = time.Unix(signed.Submitted, 0).UTC()
	}

	trace, err := p.Runtime.Push(signatories, a, submitted)
	if nil != err {
		return err
	}

	p.Log.Debugf("%s: tx: %s  console: %q", name, trace.TxId, trace.Console)

	*reply = *trace
	return nil
}

// ---

// SpotArguments - arguments for Parking.Spot
type SpotArguments struct {
	SpotId uint64 `json:"spot_id"`
}

// SpotReply - a single spot
type SpotReply struct {
	Spot *registry.Spot `json:"spot"`
}

// Spot - read one committed spot
func (p *Parking) Spot(arguments *SpotArguments, reply *SpotReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}
	if nil == p.Pool {
		return fault.DatabaseIsNotSet
	}

	spot, found := p.Registry.Spot(storage.NewReader(p.Pool), arguments.SpotId)
	if !found {
		return fault.SpotNotFound
	}
	reply.Spot = spot
	return nil
}

// ---

// SpotsArguments - arguments for Parking.Spots
//
// Zone restricts the results to one zone when set
type SpotsArguments struct {
	Start uint64  `json:"start,string"`
	Count int     `json:"count"`
	Zone  *uint64 `json:"zone_id,omitempty"`
}

// SpotsReply - a page of spots
//
// NextStart is the id to continue from, it equals the request's
// Start once there is nothing left, including after the highest
// possible id has been returned
type SpotsReply struct {
	Spots     []registry.Spot `json:"spots"`
	NextStart uint64          `json:"nextStart,string"`
}

// Spots - page through committed spots in id order
func (p *Parking) Spots(arguments *SpotsArguments, reply *SpotsReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(p.Limiter, arguments.Count, maximumSpotsCount); nil != err {
		return err
	}

	if nil == p.Pool {
		return fault.DatabaseIsNotSet
	}

	self := p.Registry.Self()
	scope := registry.SpotKey(self, 0)[:8]

	cursor := p.Pool.NewFetchCursor().Within(scope).Seek(registry.SpotKey(self, arguments.Start))
	elements, err := cursor.Fetch(arguments.Count)
	if nil != err {
		return err
	}

	spots := make([]registry.Spot, 0, len(elements))
	nextStart := arguments.Start
	for _, e := range elements {
		_, spotId, err := registry.SplitSpotKey(e.Key)
		if nil != err {
			p.Log.Errorf("spots: key: %x  error: %s", e.Key, err)
			return err
		}
		spot, err := registry.UnpackSpot(spotId, e.Value)
		if nil != err {
			p.Log.Errorf("spots: spot: %d  record: %x  error: %s", spotId, e.Value, err)
			return err
		}
		if math.MaxUint64 == spotId {
			nextStart = arguments.Start
		} else {
			nextStart = spotId + 1
		}

		if nil != arguments.Zone && *arguments.Zone != spot.ZoneId {
			continue
		}
		spots = append(spots, *spot)
	}

	reply.Spots = spots
	reply.NextStart = nextStart
	return nil
}
