// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/counter"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/mode"
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry *registry.Registry
	counter  *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, reg *registry.Registry, counter *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string          `json:"chain"`
	Mode     string          `json:"mode"`
	Contract account.Name    `json:"contract"`
	Currency currency.Symbol `json:"currency"`
	Deadline DeadlineInfo    `json:"deadline"`
	RPCs     uint64          `json:"rpcs"`
	Version  string          `json:"version"`
	Uptime   string          `json:"uptime"`
}

// DeadlineInfo - the payment deadline for an action submitted now
type DeadlineInfo struct {
	Policy string    `json:"policy"`
	Expiry time.Time `json:"expiry"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	policy := node.Registry.Policy()

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Contract = node.Registry.Self()
	reply.Currency = node.Registry.Symbol()
	reply.Deadline = DeadlineInfo{
		Policy: policy.Name(),
		Expiry: policy.Deadline(time.Now().UTC()),
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
