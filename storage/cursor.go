// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/parkingspot/fault"
)

// FetchCursor - cursor structure
//
// cursors only see committed data
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Within - restrict the cursor to keys beginning with prefix
func (cursor *FetchCursor) Within(prefix []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(prefix)
	limit, ok := nextKey(prefix)
	if ok {
		cursor.maxRange.Limit = cursor.pool.prefixKey(limit)
	} else {
		cursor.maxRange.Limit = cursor.pool.limit
	}
	return cursor
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from the current position
// and advance the cursor beyond the last one returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == cursor.pool.database || nil == poolData.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		// the smallest key strictly after the last one
		last := results[n-1].Key
		start := make([]byte, len(last)+1)
		copy(start, last)
		cursor.maxRange.Start = cursor.pool.prefixKey(start)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == cursor.pool.database || nil == poolData.db {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// the first key that does not have prefix as its prefix
//
// false if no such key exists (prefix is all 0xff)
func nextKey(prefix []byte) ([]byte, bool) {
	next := make([]byte, len(prefix))
	copy(next, prefix)
	for i := len(next) - 1; i >= 0; i -= 1 {
		next[i] += 1
		if 0 != next[i] {
			return next[:i+1], true
		}
	}
	return nil, false
}
