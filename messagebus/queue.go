// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its frames
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a buffered message channel
type Queue struct {
	sync.Mutex
	c       chan Message
	dropped uint64
}

// BusType - all the queues
type BusType struct {
	Broadcast *Queue // notifications to publish
	TestQueue *Queue // for testing use
}

// Bus - the global set of queues
var Bus = BusType{
	Broadcast: newQueue(queueSize),
	TestQueue: newQueue(queueSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without blocking, a full queue drops the
// message and returns false
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
		return true
	default:
		queue.Lock()
		queue.dropped += 1
		queue.Unlock()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}

// Drain - discard any queued messages
func (queue *Queue) Drain() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}
