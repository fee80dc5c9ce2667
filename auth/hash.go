// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	argon2 "github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/parkingspot/account"
	"github.com/bitmark-inc/parkingspot/fault"
)

const (
	saltLength = 16
	hashLength = 32
)

// Entry - one account in the accounts file
type Entry struct {
	Name string `gluamapper:"name" json:"name"`
	Salt string `gluamapper:"salt" json:"salt"`
	Hash string `gluamapper:"hash" json:"hash"`
}

// MakeEntry - create an accounts file entry for a new key
func MakeEntry(name account.Name, key string) (Entry, error) {
	if name.IsEmpty() {
		return Entry{}, fault.ZeroAccountNameNotAllowed
	}
	if "" == key {
		return Entry{}, fault.InvalidCredential
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); nil != err {
		return Entry{}, err
	}

	hash, err := hashKey(key, salt)
	if nil != err {
		return Entry{}, err
	}

	return Entry{
		Name: name.String(),
		Salt: hex.EncodeToString(salt),
		Hash: hex.EncodeToString(hash),
	}, nil
}

// Lua - the entry as a Lua table constructor
func (e Entry) Lua() string {
	return fmt.Sprintf("{ name = %q, salt = %q, hash = %q },", e.Name, e.Salt, e.Hash)
}

func hashKey(key string, salt []byte) ([]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     hashLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(key), salt)
}
