// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/parkingspot/fault"
)

// Table - one pool accessed through the database transaction
type Table struct {
	pool *PoolHandle
	trx  Transaction
}

// NewTable - wrap a pool for transactional access
func NewTable(pool *PoolHandle) *Table {
	return &Table{
		pool: pool,
	}
}

// Begin - open the database transaction
func (t *Table) Begin() error {
	if nil != t.trx {
		return fault.TransactionAlreadyInUse
	}
	if nil == t.pool {
		return fault.DatabaseIsNotSet
	}
	trx, err := NewDBTransaction()
	if nil != err {
		return err
	}
	t.trx = trx
	return nil
}

// Commit - write all pending changes
func (t *Table) Commit() error {
	if nil == t.trx {
		return fault.TransactionNotInUse
	}
	err := t.trx.Commit()
	t.trx = nil
	return err
}

// Abort - discard all pending changes
func (t *Table) Abort() {
	if nil == t.trx {
		return
	}
	t.trx.Abort()
	t.trx = nil
}

// Get - read a value, including pending changes
//
// must be called between Begin and Commit/Abort
func (t *Table) Get(key []byte) ([]byte, bool) {
	value := t.trx.Get(t.pool, key)
	return value, nil != value
}

// Put - stage a write
func (t *Table) Put(key []byte, value []byte) {
	t.trx.Put(t.pool, key, value)
}

// Delete - stage a removal
func (t *Table) Delete(key []byte) {
	t.trx.Delete(t.pool, key)
}

// Reader - committed data only, safe to use outside a transaction
type Reader struct {
	pool *PoolHandle
}

// NewReader - read-only view of a pool
func NewReader(pool *PoolHandle) *Reader {
	return &Reader{
		pool: pool,
	}
}

// Get - read a committed value
func (r *Reader) Get(key []byte) ([]byte, bool) {
	value := r.pool.Get(key)
	return value, nil != value
}
