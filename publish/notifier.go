// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/messagebus"
	"github.com/bitmark-inc/parkingspot/registry"
)

// NotifyCommand - first frame of every notification
const NotifyCommand = "notify"

// Notification - JSON body of the last frame
type Notification struct {
	TxId      string          `json:"txId"`
	Recipient account.Name    `json:"recipient"`
	Action    account.Name    `json:"action"`
	Data      json.RawMessage `json:"data"`
}

// Notifier - queues committed receipts for broadcast
type Notifier struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewNotifier - notifier writing to the broadcast queue
func NewNotifier(log *logger.L) *Notifier {
	return &Notifier{
		log:   log,
		queue: messagebus.Bus.Broadcast,
	}
}

// Notify - queue frames: ["notify", recipient, JSON]
func (n *Notifier) Notify(txId string, receipt registry.Receipt) {
	body, err := json.Marshal(Notification{
		TxId:      txId,
		Recipient: receipt.Recipient,
		Action:    receipt.Action,
		Data:      receipt.Data,
	})
	if nil != err {
		n.log.Errorf("tx: %s  recipient: %s  encode error: %s", txId, receipt.Recipient, err)
		return
	}

	if !n.queue.Send(NotifyCommand, []byte(receipt.Recipient.String()), body) {
		n.log.Warnf("tx: %s  recipient: %s  broadcast queue full", txId, receipt.Recipient)
	}
}
