// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make key pair")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "private length")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite")
}

func TestParseKey(t *testing.T) {
	hexKey := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	key, private, err := zmqutil.ParseKey("  PRIVATE:" + hexKey + "\n")
	assert.Nil(t, err, "private")
	assert.True(t, private, "is private")
	assert.Equal(t, byte(0x01), key[0], "first byte")

	_, private, err = zmqutil.ParseKey("PUBLIC:" + hexKey)
	assert.Nil(t, err, "public")
	assert.False(t, private, "is public")

	_, _, err = zmqutil.ParseKey("PUBLIC:0123")
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public")

	_, _, err = zmqutil.ParseKey("PRIVATE:xyz")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "bad hex")

	_, _, err = zmqutil.ParseKey(hexKey)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged")
}
