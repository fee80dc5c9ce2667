// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/parkingspot/storage"
)

// test database file
const (
	databaseFileName = "test"
	databaseDirName  = "test.leveldb"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	removeFiles()
}

// commit a set of key/value pairs
func populate(t *testing.T, elements []storage.Element) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, e := range elements {
		trx.Put(storage.Pool.Spots, e.Key, e.Value)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
