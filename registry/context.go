// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/fault"
)

// Receipt - a copy of an action delivered to a recipient
type Receipt struct {
	Recipient account.Name    `json:"recipient"`
	Action    account.Name    `json:"action"`
	Data      json.RawMessage `json:"data"`
}

// Context - everything an action may touch while it runs
//
// one context spans a pushed action and all the inline actions
// it causes, so console output and receipts accumulate
type Context struct {
	authority Authority
	store     RecordStore
	now       time.Time
	submitted time.Time

	current    *action.Action
	console    []string
	inline     []*action.Action
	recipients []Receipt
}

// NewContext - create a context over an open store
func NewContext(authority Authority, store RecordStore, now time.Time, submitted time.Time) *Context {
	return &Context{
		authority: authority,
		store:     store,
		now:       now,
		submitted: submitted,
	}
}

// SetAuthority - replace the signatories, used when moving to an inline action
func (ctx *Context) SetAuthority(authority Authority) {
	ctx.authority = authority
}

// Store - the open record store
func (ctx *Context) Store() RecordStore {
	return ctx.store
}

// Now - execution time
func (ctx *Context) Now() time.Time {
	return ctx.now
}

// Submitted - time the outermost action was submitted
func (ctx *Context) Submitted() time.Time {
	return ctx.submitted
}

// RequireAuth - fail unless the account authorised the action
func (ctx *Context) RequireAuth(a account.Name) error {
	if nil == ctx.authority || !ctx.authority.IsAuthorised(a) {
		return fault.MissingAuthority
	}
	return nil
}

// RequireRecipient - deliver a copy of the running action to an account
//
// delivery happens only if the whole transaction commits
func (ctx *Context) RequireRecipient(recipient account.Name) {
	if nil == ctx.current {
		return
	}
	for _, r := range ctx.recipients {
		if r.Recipient == recipient && r.Action == ctx.current.Name && string(r.Data) == string(ctx.current.Data) {
			return
		}
	}
	ctx.recipients = append(ctx.recipients, Receipt{
		Recipient: recipient,
		Action:    ctx.current.Name,
		Data:      ctx.current.Data,
	})
}

// Print - add a line of console output
func (ctx *Context) Print(format string, arguments ...interface{}) {
	ctx.console = append(ctx.console, fmt.Sprintf(format, arguments...))
}

// SendInline - queue an action to run after the current one
func (ctx *Context) SendInline(a *action.Action) {
	ctx.inline = append(ctx.inline, a)
}

// TakeInline - remove and return the queued inline actions
func (ctx *Context) TakeInline() []*action.Action {
	queued := ctx.inline
	ctx.inline = nil
	return queued
}

// Console - all console output so far
func (ctx *Context) Console() []string {
	return ctx.console
}

// Recipients - all receipts so far
func (ctx *Context) Recipients() []Receipt {
	return ctx.recipients
}
