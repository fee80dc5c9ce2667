// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/auth"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/mode"
	"github.com/bitmark-inc/parkingspot/registry"
)

// limit on inline actions caused by one pushed action
const maximumInlineActions = 64

// Store - transactional record store
type Store interface {
	registry.RecordStore
	Begin() error
	Commit() error
	Abort()
}

// Clock - source of the current time
type Clock interface {
	Now() time.Time
}

// SystemClock - wall clock in UTC
type SystemClock struct{}

// Now - current time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Notifier - receives each recipient's copy after commit
type Notifier interface {
	Notify(txId string, receipt registry.Receipt)
}

// Trace - result of a pushed action
type Trace struct {
	TxId       string             `json:"txId"`
	Console    []string           `json:"console"`
	Recipients []registry.Receipt `json:"recipients"`
}

// Runtime - serialised action execution
type Runtime struct {
	sync.Mutex

	log      *logger.L
	clock    Clock
	store    Store
	registry *registry.Registry
	notifier Notifier
}

// New - create a runtime
func New(log *logger.L, clock Clock, store Store, reg *registry.Registry, notifier Notifier) *Runtime {
	return &Runtime{
		log:      log,
		clock:    clock,
		store:    store,
		registry: reg,
		notifier: notifier,
	}
}

// Registry - the contract this runtime executes
func (rt *Runtime) Registry() *registry.Registry {
	return rt.registry
}

// Push - run an action and all its inline actions to completion
//
// a zero submitted time means now, and on a live chain a submission
// time in the future is clamped to now
func (rt *Runtime) Push(authority registry.Authority, a *action.Action, submitted time.Time) (*Trace, error) {
	if nil == a {
		return nil, fault.MissingParameters
	}

	rt.Lock()
	defer rt.Unlock()

	if mode.IsNot(mode.Normal) {
		return nil, fault.NotAvailable
	}

	now := rt.clock.Now()
	if submitted.IsZero() || (submitted.After(now) && !mode.IsTesting()) {
		submitted = now
	}

	txId, err := transactionId(a, submitted)
	if nil != err {
		return nil, err
	}

	err = rt.store.Begin()
	if nil != err {
		rt.log.Errorf("tx: %s  begin error: %s", txId, err)
		return nil, err
	}

	ctx := registry.NewContext(authority, rt.store, now, submitted)

	err = rt.run(ctx, a)
	if nil != err {
		rt.store.Abort()
		rt.log.Warnf("tx: %s  action: %s  aborted: %s", txId, a.Name, err)
		return nil, err
	}

	err = rt.store.Commit()
	if nil != err {
		rt.log.Errorf("tx: %s  commit error: %s", txId, err)
		return nil, err
	}

	trace := &Trace{
		TxId:       txId,
		Console:    ctx.Console(),
		Recipients: ctx.Recipients(),
	}

	rt.log.Infof("tx: %s  action: %s  recipients: %d", txId, a.Name, len(trace.Recipients))

	if nil != rt.notifier {
		for _, receipt := range trace.Recipients {
			rt.notifier.Notify(txId, receipt)
		}
	}

	return trace, nil
}

// run the action then the inline actions in the order they were sent
func (rt *Runtime) run(ctx *registry.Context, a *action.Action) error {
	err := rt.registry.Apply(ctx, a)
	if nil != err {
		return err
	}

	queue := ctx.TakeInline()
	count := 0
	for 0 != len(queue) {
		inline := queue[0]
		queue = queue[1:]

		count += 1
		if count > maximumInlineActions {
			return fault.TooManyInlineActions
		}

		actors, err := rt.inlineActors(inline)
		if nil != err {
			return err
		}
		ctx.SetAuthority(auth.NewSignatories(actors...))

		err = rt.registry.Apply(ctx, inline)
		if nil != err {
			return err
		}
		queue = append(queue, ctx.TakeInline()...)
	}
	return nil
}

// inline actions may only carry the contract's own authority
func (rt *Runtime) inlineActors(a *action.Action) ([]account.Name, error) {
	if 0 == len(a.Authorisation) {
		return nil, fault.WrongInlineAuthority
	}
	self := rt.registry.Self()
	actors := make([]account.Name, 0, len(a.Authorisation))
	for _, level := range a.Authorisation {
		if level.Actor != self {
			rt.log.Warnf("inline action: %s  authorised by: %s", a.Name, level)
			return nil, fault.WrongInlineAuthority
		}
		actors = append(actors, level.Actor)
	}
	return actors, nil
}

// SHA3-256 of the action JSON and the submission time
func transactionId(a *action.Action, submitted time.Time) (string, error) {
	buffer, err := json.Marshal(a)
	if nil != err {
		return "", err
	}
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(submitted.UnixNano()))

	digest := sha3.Sum256(append(buffer, ts...))
	return hex.EncodeToString(digest[:]), nil
}
