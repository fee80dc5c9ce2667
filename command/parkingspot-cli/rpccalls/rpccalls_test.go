// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/action"
	"github.com/bitmark-inc/parkingspot/auth"
	"github.com/bitmark-inc/parkingspot/command/parkingspot-cli/rpccalls"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/rpc/fixtures"
	"github.com/bitmark-inc/parkingspot/rpc/node"
	"github.com/bitmark-inc/parkingspot/rpc/parking"
)

var (
	address string
	stub    = &stubParking{}
)

func name(s string) account.Name {
	n, err := account.NameFromString(s)
	if nil != err {
		panic(err)
	}
	return n
}

// records the last request of each kind
type stubParking struct {
	sync.Mutex
	signed   parking.Signed
	insert   action.Insert
	modAvail action.ModAvail
	notify   action.Notify
	spots    parking.SpotsArguments
}

func (s *stubParking) Insert(args *parking.InsertArguments, reply *parking.ActionReply) error {
	s.Lock()
	defer s.Unlock()
	s.signed = args.Signed
	s.insert = args.Insert
	reply.TxId = "01"
	reply.Console = []string{"inserted"}
	return nil
}

func (s *stubParking) Erase(args *parking.EraseArguments, reply *parking.ActionReply) error {
	return fault.SpotNotFound
}

func (s *stubParking) ModAvail(args *parking.ModAvailArguments, reply *parking.ActionReply) error {
	s.Lock()
	defer s.Unlock()
	s.signed = args.Signed
	s.modAvail = args.ModAvail
	reply.TxId = "02"
	for _, recipient := range []account.Name{args.Buyer, args.Seller} {
		reply.Recipients = append(reply.Recipients, registry.Receipt{
			Recipient: recipient,
			Action:    action.ModAvailName,
			Data:      json.RawMessage(`{}`),
		})
	}
	return nil
}

func (s *stubParking) Notify(args *parking.NotifyArguments, reply *parking.ActionReply) error {
	s.Lock()
	defer s.Unlock()
	s.notify = args.Notify
	reply.TxId = "03"
	return nil
}

func (s *stubParking) Spot(args *parking.SpotArguments, reply *parking.SpotReply) error {
	if 7 != args.SpotId {
		return fault.SpotNotFound
	}
	reply.Spot = &registry.Spot{
		SpotId:    7,
		ZoneId:    2,
		TimeSlots: []uint32{900},
		Available: true,
		Owner:     name("alice"),
	}
	return nil
}

func (s *stubParking) Spots(args *parking.SpotsArguments, reply *parking.SpotsReply) error {
	s.Lock()
	defer s.Unlock()
	s.spots = *args
	reply.Spots = []registry.Spot{
		{SpotId: args.Start, Owner: name("alice"), TimeSlots: []uint32{}},
	}
	reply.NextStart = args.Start + 1
	return nil
}

type stubNode struct{}

func (stubNode) Info(args *node.InfoArguments, reply *node.InfoReply) error {
	reply.Chain = "local"
	reply.Mode = "Normal"
	reply.Contract = name("parkingspot")
	reply.Currency = currency.VTP
	reply.Version = "zero"
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	cert, key, err := fixtures.Certificate()
	if nil != err {
		panic(err)
	}
	keyPair, err := tls.X509KeyPair([]byte(cert), []byte(key))
	if nil != err {
		panic(err)
	}

	server := rpc.NewServer()
	_ = server.RegisterName("Parking", stub)
	_ = server.RegisterName("Node", stubNode{})

	listener, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{keyPair},
	})
	if nil != err {
		panic(err)
	}
	address = listener.Addr().String()

	go func() {
		for {
			conn, err := listener.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	listener.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newClient(t *testing.T, verbose bool, handle *bytes.Buffer) *rpccalls.Client {
	credentials := []auth.Credential{
		{Account: name("alice"), Key: "secret"},
	}
	client, err := rpccalls.NewClient(address, credentials, verbose, handle)
	require.Nil(t, err, "wrong NewClient")
	return client
}

func TestInsertSendsCredentials(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	submitted := time.Unix(1577836800, 0)
	insert := action.Insert{
		User:   name("alice"),
		SpotId: 7,
		ZoneId: 2,
		Owner:  name("alice"),
	}
	reply, err := client.Insert(insert, submitted)
	require.Nil(t, err, "wrong Insert")

	assert.Equal(t, "01", reply.TxId, "wrong tx id")
	assert.Equal(t, []string{"inserted"}, reply.Console, "wrong console")

	stub.Lock()
	defer stub.Unlock()
	assert.Equal(t, insert, stub.insert, "wrong insert")
	assert.Equal(t, int64(1577836800), stub.signed.Submitted, "wrong submitted")
	require.Equal(t, 1, len(stub.signed.Credentials), "wrong credential count")
	assert.Equal(t, name("alice"), stub.signed.Credentials[0].Account, "wrong account")
	assert.Equal(t, "secret", stub.signed.Credentials[0].Key, "wrong key")
}

func TestModAvailZeroSubmitted(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	quantity, err := currency.ParseAsset("1.5000 VTP")
	require.Nil(t, err, "wrong ParseAsset")

	modAvail := action.ModAvail{
		User:     name("bob"),
		Quantity: quantity,
		SpotId:   7,
		ZoneId:   2,
		TimeCode: 900,
		Buyer:    name("bob"),
		Seller:   name("alice"),
	}
	reply, err := client.ModAvail(modAvail, time.Time{})
	require.Nil(t, err, "wrong ModAvail")

	require.Equal(t, 2, len(reply.Recipients), "wrong recipient count")
	assert.Equal(t, name("bob"), reply.Recipients[0].Recipient, "wrong buyer")
	assert.Equal(t, name("alice"), reply.Recipients[1].Recipient, "wrong seller")
	assert.Equal(t, action.ModAvailName, reply.Recipients[1].Action, "wrong action")

	stub.Lock()
	defer stub.Unlock()
	assert.Equal(t, modAvail, stub.modAvail, "wrong modavail")
	assert.Equal(t, int64(0), stub.signed.Submitted, "submitted should be zero")
}

func TestNotify(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	notify := action.Notify{
		User: name("carol"),
		Msg:  "spot 7 is free",
	}
	reply, err := client.Notify(notify, time.Time{})
	require.Nil(t, err, "wrong Notify")
	assert.Equal(t, "03", reply.TxId, "wrong tx id")

	stub.Lock()
	defer stub.Unlock()
	assert.Equal(t, notify, stub.notify, "wrong notify")
}

func TestServerError(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	_, err := client.Erase(action.Erase{User: name("alice"), SpotId: 1}, time.Time{})
	require.NotNil(t, err, "expected error")
	assert.Equal(t, fault.SpotNotFound.Error(), err.Error(), "wrong error")
}

func TestSpot(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	spot, err := client.Spot(7)
	require.Nil(t, err, "wrong Spot")
	assert.Equal(t, uint64(2), spot.ZoneId, "wrong zone")
	assert.True(t, spot.HasTimeCode(900), "missing time code")
	assert.Equal(t, name("alice"), spot.Owner, "wrong owner")

	_, err = client.Spot(8)
	assert.NotNil(t, err, "missing spot should fail")
}

func TestSpotsVerbose(t *testing.T) {
	var buffer bytes.Buffer
	client := newClient(t, true, &buffer)
	defer client.Close()

	zone := uint64(3)
	reply, err := client.Spots(&rpccalls.SpotsData{
		Start: 10,
		Count: 5,
		Zone:  &zone,
	})
	require.Nil(t, err, "wrong Spots")
	assert.Equal(t, uint64(11), reply.NextStart, "wrong next start")
	require.Equal(t, 1, len(reply.Spots), "wrong spot count")

	stub.Lock()
	assert.Equal(t, 5, stub.spots.Count, "wrong count")
	require.NotNil(t, stub.spots.Zone, "zone not sent")
	assert.Equal(t, zone, *stub.spots.Zone, "wrong zone")
	stub.Unlock()

	assert.True(t, strings.Contains(buffer.String(), "Spots Request"), "request not shown")
	assert.True(t, strings.Contains(buffer.String(), "Spots Reply"), "reply not shown")
}

func TestVerboseHidesCredentials(t *testing.T) {
	var buffer bytes.Buffer
	client := newClient(t, true, &buffer)
	defer client.Close()

	_, err := client.Notify(action.Notify{User: name("carol"), Msg: "hello"}, time.Time{})
	require.Nil(t, err, "wrong Notify")

	assert.True(t, strings.Contains(buffer.String(), "hello"), "action not shown")
	assert.False(t, strings.Contains(buffer.String(), "secret"), "key was shown")
}

func TestInfo(t *testing.T) {
	client := newClient(t, false, nil)
	defer client.Close()

	info, err := client.GetInfo()
	require.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "local", info.Chain, "wrong chain")
	assert.Equal(t, name("parkingspot"), info.Contract, "wrong contract")
	assert.Equal(t, currency.VTP, info.Currency, "wrong currency")
}
