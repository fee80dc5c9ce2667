// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/parkingspot/messagebus"
	"github.com/bitmark-inc/parkingspot/zmqutil"
)

const (
	broadcastZapDomain = "broadcast"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcastZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// wait for new notifications
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan()

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one notify message as a multipart frame
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	log := brdc.log
	log.Debugf("sending: %s  frames: %d", item.Command, len(item.Parameters))

	for i, frame := range frames(item) {
		flags := zmq.DONTWAIT
		if i < len(item.Parameters) {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(frame, flags); nil != err {
			log.Warnf("send: %s  frame: %d  error: %s", item.Command, i, err)
			return
		}
	}
}

// the multipart frames for a message: command then each parameter
func frames(item *messagebus.Message) [][]byte {
	f := make([][]byte, 0, 1+len(item.Parameters))
	f = append(f, []byte(item.Command))
	return append(f, item.Parameters...)
}
