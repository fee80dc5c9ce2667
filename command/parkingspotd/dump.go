// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/registry"
	"github.com/bitmark-inc/parkingspot/storage"
)

// write every spot of a contract as a JSON array
func dumpSpots(fd io.Writer, pool *storage.PoolHandle, contract account.Name) (int, error) {
	n := 0
	fmt.Fprintf(fd, "[\n")

	err := pool.NewFetchCursor().Within(contract.Bytes()).Map(func(key []byte, value []byte) error {
		_, spotId, err := registry.SplitSpotKey(key)
		if nil != err {
			return err
		}
		spot, err := registry.UnpackSpot(spotId, value)
		if nil != err {
			return err
		}
		s, err := json.MarshalIndent(spot, "  ", "  ")
		if nil != err {
			return err
		}
		if 0 != n {
			fmt.Fprintf(fd, ",\n")
		}
		fmt.Fprintf(fd, "  %s", s)
		n += 1
		return nil
	})

	fmt.Fprintf(fd, "\n]\n")
	return n, err
}
