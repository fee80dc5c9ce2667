// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/currency"
	"github.com/bitmark-inc/parkingspot/fault"
)

func TestParseSymbol(t *testing.T) {
	s, err := currency.ParseSymbol("4,VTP")
	assert.Nil(t, err)
	assert.Equal(t, currency.VTP, s)
	assert.Equal(t, "4,VTP", s.String())

	s, err = currency.ParseSymbol("0,EOS")
	assert.Nil(t, err)
	assert.Equal(t, currency.Symbol{Precision: 0, Code: "EOS"}, s)

	for _, bad := range []string{"", "VTP", "4,vtp", "19,VTP", "4,", "x,VTP", "4,ABCDEFGH", "4,VTP,1"} {
		_, err := currency.ParseSymbol(bad)
		assert.Equal(t, fault.InvalidSymbol, err, "symbol: %q", bad)
	}
}

func TestParseAsset(t *testing.T) {
	items := []struct {
		text   string
		amount int64
		symbol currency.Symbol
	}{
		{"1.0000 VTP", 10000, currency.VTP},
		{"0.0001 VTP", 1, currency.VTP},
		{"-2.5000 VTP", -25000, currency.VTP},
		{"0.0000 VTP", 0, currency.VTP},
		{"12 EOS", 12, currency.Symbol{Precision: 0, Code: "EOS"}},
		{"1.5 VTP", 15, currency.Symbol{Precision: 1, Code: "VTP"}},
	}

	for i, item := range items {
		a, err := currency.ParseAsset(item.text)
		assert.Nil(t, err, "%d: %q", i, item.text)
		assert.Equal(t, item.amount, a.Amount, "%d: amount", i)
		assert.Equal(t, item.symbol, a.Symbol, "%d: symbol", i)
		assert.Equal(t, item.text, a.String(), "%d: round trip", i)
	}
}

func TestParseAssetInvalid(t *testing.T) {
	for _, bad := range []string{"", "1.0000", "VTP", "1. VTP", ".5 VTP", "1.0a00 VTP", "1.0000 vtp", "99999999999999999999 VTP", "1.0000 VTP extra"} {
		_, err := currency.ParseAsset(bad)
		assert.NotNil(t, err, "asset: %q", bad)
	}
}

func TestAssetJSON(t *testing.T) {
	type transfer struct {
		Quantity currency.Asset `json:"quantity"`
	}

	buffer, err := json.Marshal(transfer{Quantity: currency.Asset{Amount: 10000, Symbol: currency.VTP}})
	assert.Nil(t, err)
	assert.Equal(t, `{"quantity":"1.0000 VTP"}`, string(buffer))

	var tr transfer
	err = json.Unmarshal([]byte(`{"quantity":"0.5000 VTP"}`), &tr)
	assert.Nil(t, err)
	assert.Equal(t, int64(5000), tr.Quantity.Amount)
	assert.Equal(t, currency.VTP, tr.Quantity.Symbol)
}
