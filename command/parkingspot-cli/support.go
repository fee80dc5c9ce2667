// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/auth"
	"github.com/bitmark-inc/parkingspot/command/parkingspot-cli/rpccalls"
	"github.com/bitmark-inc/parkingspot/currency"
)

// pair up the account and key flags
func makeCredentials(accounts []string, keys []string) ([]auth.Credential, error) {
	if len(accounts) != len(keys) {
		return nil, fmt.Errorf("%d accounts but %d keys", len(accounts), len(keys))
	}
	credentials := make([]auth.Credential, 0, len(accounts))
	for i, a := range accounts {
		name, err := account.NameFromString(strings.TrimSpace(a))
		if nil != err {
			return nil, fmt.Errorf("account: %q  error: %s", a, err)
		}
		credentials = append(credentials, auth.Credential{
			Account: name,
			Key:     keys[i],
		})
	}
	return credentials, nil
}

func checkName(c *cli.Context, flag string) (account.Name, error) {
	s := strings.TrimSpace(c.String(flag))
	if "" == s {
		return 0, fmt.Errorf("%s account is required", flag)
	}
	name, err := account.NameFromString(s)
	if nil != err {
		return 0, fmt.Errorf("%s: %q  error: %s", flag, s, err)
	}
	return name, nil
}

func checkSpotId(c *cli.Context) (uint64, error) {
	if !c.IsSet("spot") {
		return 0, fmt.Errorf("spot id is required")
	}
	return c.Uint64("spot"), nil
}

func checkQuantity(s string) (currency.Asset, error) {
	if "" == s {
		return currency.Asset{}, fmt.Errorf("quantity is required")
	}
	return currency.ParseAsset(s)
}

// blank is the zero time
func checkTime(s string) (time.Time, error) {
	if "" == s {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

// blank means all zones
func checkZone(s string) (*uint64, error) {
	if "" == s {
		return nil, nil
	}
	zone, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return nil, fmt.Errorf("zone: %q  error: %s", s, err)
	}
	return &zone, nil
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.credentials, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
