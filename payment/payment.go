// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - client for the token transfer service
//
// the service is reached by JSON-RPC, optionally over TLS, and
// provides the method Token.Transfer; with TLS the server certificate
// must be signed by the configured CA
package payment

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/util"
)

const (
	transferMethod  = "Token.Transfer"
	defaultContract = "eosio.token"
	dialTimeout     = 10 * time.Second
	callTimeout     = 30 * time.Second
)

// Configuration - token service connection
type Configuration struct {
	Connect       string `gluamapper:"connect" json:"connect"`
	UseTLS        bool   `gluamapper:"use_tls" json:"use_tls"`
	CACertificate string `gluamapper:"ca_certificate" json:"ca_certificate"`
	Contract      string `gluamapper:"contract" json:"contract"`
}

// TransferArguments - the request sent to the token service
type TransferArguments struct {
	Contract      account.Name            `json:"contract"`
	From          account.Name            `json:"from"`
	To            account.Name            `json:"to"`
	Quantity      currency.Asset          `json:"quantity"`
	Memo          string                  `json:"memo"`
	Authorisation account.PermissionLevel `json:"authorization"`
}

// TransferReply - the token service result
type TransferReply struct {
	TxId string `json:"txId"`
}

// Client - a connection to the token service
//
// the connection is opened on first use and reopened on the next
// call after it fails; a failed call is never retried
type Client struct {
	sync.Mutex
	log       *logger.L
	connect   string
	tlsConfig *tls.Config
	contract  account.Name
	conn      net.Conn
	client    *rpc.Client
}

// New - create a client
func New(log *logger.L, configuration Configuration) (*Client, error) {
	connect, err := util.CanonicalIPandPort(configuration.Connect)
	if nil != err {
		log.Errorf("token service: %q  error: %s", configuration.Connect, err)
		return nil, err
	}

	name := configuration.Contract
	if "" == name {
		name = defaultContract
	}
	contract, err := account.NameFromString(name)
	if nil != err {
		log.Errorf("token contract: %q  error: %s", name, err)
		return nil, err
	}

	c := &Client{
		log:      log,
		connect:  connect,
		contract: contract,
	}

	if configuration.UseTLS {
		certificatePool, err := loadCertificatePool(configuration.CACertificate)
		if nil != err {
			log.Criticalf("failed to parse certificate from: %q  error: %s", configuration.CACertificate, err)
			return nil, err
		}
		c.tlsConfig = &tls.Config{
			RootCAs:            certificatePool,
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		}
	}

	return c, nil
}

func loadCertificatePool(fileName string) (*x509.CertPool, error) {
	if "" == fileName {
		return nil, fault.InvalidCertificate
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	certificatePool := x509.NewCertPool()
	if !certificatePool.AppendCertsFromPEM(data) {
		return nil, fault.InvalidCertificate
	}
	return certificatePool, nil
}

// Contract - the token contract account
func (c *Client) Contract() account.Name {
	return c.contract
}

// Transfer - ask the token service to move quantity from one account to another
func (c *Client) Transfer(from account.Name, to account.Name, quantity currency.Asset, memo string, authorisation account.PermissionLevel) error {
	c.Lock()
	defer c.Unlock()

	if nil == c.client {
		err := c.dial()
		if nil != err {
			c.log.Errorf("connect: %s  error: %s", c.connect, err)
			return err
		}
	}

	args := TransferArguments{
		Contract:      c.contract,
		From:          from,
		To:            to,
		Quantity:      quantity,
		Memo:          memo,
		Authorisation: authorisation,
	}
	var reply TransferReply

	// a hung service must not hold the lock forever
	err := c.conn.SetDeadline(time.Now().Add(callTimeout))
	if nil == err {
		err = c.client.Call(transferMethod, args, &reply)
	}
	if nil == err {
		_ = c.conn.SetDeadline(time.Time{})
		c.log.Infof("transfer: %s from: %s to: %s  tx id: %s", quantity, from, to, reply.TxId)
		return nil
	}

	if serverError, ok := err.(rpc.ServerError); ok {
		_ = c.conn.SetDeadline(time.Time{})
		c.log.Warnf("transfer: %s from: %s to: %s  rejected: %s", quantity, from, to, serverError)
		return fault.PaymentRejected
	}

	// connection is unusable, open a new one on the next call
	c.log.Errorf("transfer: %s from: %s to: %s  error: %s", quantity, from, to, err)
	c.drop()
	return err
}

// Close - drop the connection
func (c *Client) Close() {
	c.Lock()
	defer c.Unlock()
	c.drop()
}

func (c *Client) drop() {
	if nil != c.client {
		c.client.Close()
		c.client = nil
		c.conn = nil
	}
}

func (c *Client) dial() error {
	dialer := &net.Dialer{
		Timeout: dialTimeout,
	}

	var conn net.Conn
	var err error
	if nil != c.tlsConfig {
		conn, err = tls.DialWithDialer(dialer, "tcp", c.connect, c.tlsConfig)
	} else {
		conn, err = dialer.Dial("tcp", c.connect)
	}
	if nil != err {
		return err
	}
	c.conn = conn
	c.client = jsonrpc.NewClient(conn)
	return nil
}
