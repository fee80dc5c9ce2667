// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/fault"
)

var validNames = []struct {
	text  string
	value uint64
}{
	{"eosio", 0x5530ea0000000000},
	{"eosio.token", 0x5530ea033482a600},
	{"active", 0x3232eda800000000},
	{"alice", 0x345c850000000000},
	{"bob", 0x3d0e000000000000},
	{"parkingspot", 0xa9af074d98ad3200},
	{"a.b", 0x300e000000000000},
	{"1", 0x0800000000000000},
	{"zzzzzzzzzzzzj", 0xffffffffffffffff},
}

func TestValidNames(t *testing.T) {
	for i, item := range validNames {
		n, err := account.NameFromString(item.text)
		assert.Nil(t, err, "%d: %q", i, item.text)
		assert.Equal(t, account.Name(item.value), n, "%d: %q", i, item.text)
		assert.Equal(t, item.text, n.String(), "%d: round trip", i)

		b, err := account.NameFromBytes(n.Bytes())
		assert.Nil(t, err, "%d: bytes", i)
		assert.Equal(t, n, b, "%d: bytes round trip", i)
	}
}

func TestInvalidNames(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"", fault.ZeroAccountNameNotAllowed},
		{"Alice", fault.InvalidAccountName},
		{"alice6", fault.InvalidAccountName},
		{"alice.", fault.InvalidAccountName},
		{"abcdefghijklmn", fault.InvalidAccountName},
		{"zzzzzzzzzzzzz", fault.InvalidAccountName},
		{"bad-name", fault.InvalidAccountName},
	}
	for i, item := range items {
		_, err := account.NameFromString(item.text)
		assert.Equal(t, item.err, err, "%d: %q", i, item.text)
	}

	_, err := account.NameFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.CannotDecodeAccount, err, "short bytes")
}

func TestNameJSON(t *testing.T) {
	type holder struct {
		Owner account.Name `json:"owner"`
	}

	alice, _ := account.NameFromString("alice")
	buffer, err := json.Marshal(holder{Owner: alice})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"alice"}`, string(buffer))

	var h holder
	err = json.Unmarshal([]byte(`{"owner":"bob"}`), &h)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, "bob", h.Owner.String())

	err = json.Unmarshal([]byte(`{"owner":"Bob"}`), &h)
	assert.NotNil(t, err, "unmarshal invalid")

	buffer, err = json.Marshal(holder{})
	assert.Nil(t, err, "marshal empty name")
	assert.Equal(t, `{"owner":""}`, string(buffer))

	err = json.Unmarshal(buffer, &h)
	assert.Equal(t, fault.ZeroAccountNameNotAllowed, err, "unmarshal empty name")
}

func TestPermissionLevel(t *testing.T) {
	p, err := account.ParsePermissionLevel("alice@active")
	assert.Nil(t, err)
	assert.Equal(t, "alice", p.Actor.String())
	assert.Equal(t, account.Active, p.Permission)
	assert.Equal(t, "alice@active", p.String())

	p, err = account.ParsePermissionLevel("bob")
	assert.Nil(t, err)
	assert.Equal(t, account.ActiveOf(p.Actor), p)

	p, err = account.ParsePermissionLevel("bob@owner")
	assert.Nil(t, err)
	assert.Equal(t, "bob@owner", p.String())

	_, err = account.ParsePermissionLevel("a@b@c")
	assert.Equal(t, fault.InvalidAccountName, err)
}
