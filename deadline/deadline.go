// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deadline - the time limit on payment transfers
//
// two policies are available:
//
//   construction - a fixed instant: the time the registry was
//                  created plus the window
//   submission   - a sliding instant: the time each action was
//                  submitted plus the window
package deadline

import (
	"strings"
	"time"

	"github.com/bitmark-inc/parkingspot/fault"
)

// policy names as used in configuration
const (
	Construction = "construction"
	Submission   = "submission"
)

// DefaultWindow - one hour
const DefaultWindow = 3600 * time.Second

// Policy - compute the deadline for an action
type Policy interface {
	Deadline(submitted time.Time) time.Time
	Name() string
}

// Configuration - from the configuration file
type Configuration struct {
	Policy string `gluamapper:"policy" json:"policy"`
	Window int    `gluamapper:"window" json:"window"`
}

// New - create a policy from configuration
//
// start is the construction time for the fixed policy
// a zero window selects DefaultWindow
func New(configuration Configuration, start time.Time) (Policy, error) {
	window := DefaultWindow
	if configuration.Window < 0 {
		return nil, fault.InvalidDeadlineWindow
	}
	if 0 != configuration.Window {
		window = time.Duration(configuration.Window) * time.Second
	}

	switch strings.ToLower(strings.TrimSpace(configuration.Policy)) {
	case "", Construction:
		return NewFixed(start, window), nil
	case Submission:
		return NewSliding(window), nil
	default:
		return nil, fault.InvalidDeadlinePolicy
	}
}

type fixed struct {
	deadline time.Time
}

// NewFixed - deadline is start + window regardless of submission
func NewFixed(start time.Time, window time.Duration) Policy {
	return &fixed{
		deadline: start.Add(window),
	}
}

func (f *fixed) Deadline(time.Time) time.Time {
	return f.deadline
}

func (f *fixed) Name() string {
	return Construction
}

type sliding struct {
	window time.Duration
}

// NewSliding - deadline is submitted + window
func NewSliding(window time.Duration) Policy {
	return &sliding{
		window: window,
	}
}

func (s *sliding) Deadline(submitted time.Time) time.Time {
	return submitted.Add(s.window)
}

func (s *sliding) Name() string {
	return Submission
}
