// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/fault"
	"github.com/bitmark-inc/parkingspot/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var cursorData = []stringElement{
	{"a-key-1", "value-1"},
	{"a-key-2", "value-2"},
	{"a-key-3", "value-3"},
	{"b-key-1", "value-4"},
	{"b-key-2", "value-5"},
	{"c-key-1", "value-6"},
}

func TestCursorFetchPages(t *testing.T) {
	setup(t)
	defer teardown()

	populate(t, makeElements(cursorData))
	expected := makeElements(cursorData)

	cursor := storage.Pool.Spots.NewFetchCursor()

	page, err := cursor.Fetch(4)
	assert.Nil(t, err, "first page")
	assert.Equal(t, expected[:4], page, "first page")

	page, err = cursor.Fetch(4)
	assert.Nil(t, err, "second page")
	assert.Equal(t, expected[4:], page, "second page")

	page, err = cursor.Fetch(4)
	assert.Nil(t, err, "third page")
	assert.Equal(t, 0, len(page), "third page")
}

func TestCursorWithin(t *testing.T) {
	setup(t)
	defer teardown()

	populate(t, makeElements(cursorData))
	expected := makeElements(cursorData)

	page, err := storage.Pool.Spots.NewFetchCursor().Within([]byte("b-")).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, expected[3:5], page, "b- range")

	page, err = storage.Pool.Spots.NewFetchCursor().Within([]byte("a-")).Seek([]byte("a-key-2")).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, expected[1:3], page, "a- range after seek")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown()

	populate(t, makeElements(cursorData))

	n := 0
	err := storage.Pool.Spots.NewFetchCursor().Map(func(key []byte, value []byte) error {
		assert.Equal(t, cursorData[n].key, string(key))
		assert.Equal(t, cursorData[n].value, string(value))
		n += 1
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, len(cursorData), n)

	last, found := storage.Pool.Spots.LastElement()
	assert.True(t, found)
	assert.Equal(t, "c-key-1", string(last.Key))
}

func TestCursorInvalidCount(t *testing.T) {
	setup(t)
	defer teardown()

	_, err := storage.Pool.Spots.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err)

	var cursor *storage.FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err)
}
