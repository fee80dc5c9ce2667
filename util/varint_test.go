// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/parkingspot/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{900, []byte{0x84, 0x07}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestAppendVarint64(t *testing.T) {
	buffer := []byte{0xaa}
	for _, item := range varint64Tests {
		buffer = util.AppendVarint64(buffer, item.value)
	}

	if 0xaa != buffer[0] {
		t.Fatalf("prefix overwritten: %x", buffer)
	}
	n := 1
	for i, item := range varint64Tests {
		value, count := util.FromVarint64(buffer[n:])
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: read back: %x/%d  expected: %x/%d", i, value, count, item.value, len(item.encoded))
		}
		n += count
	}
	if n != len(buffer) {
		t.Errorf("consumed: %d of %d bytes", n, len(buffer))
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		result, count := util.FromVarint64(item.encoded)
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) read: %d  expected: %d", i, item.encoded, count, len(item.encoded))
		}
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %x  expected: %x", i, item.encoded, result, item.value)
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != count || 0 != result {
			t.Errorf("%d: FromVarint64(%x) -> %x/%d  expected: 0/0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   int
		count   int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x7f}, 127, 1},
		{[]byte{0x80, 0x01}, 128, 2},
		{[]byte{0x81, 0x01}, 0, 0},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0, 0},
		{[]byte{0x80}, 0, 0},
	}
	for i, item := range tests {
		value, count := util.ClippedVarint64(item.encoded, 0, 128)
		if value != item.value || count != item.count {
			t.Errorf("%d: ClippedVarint64(%x) -> %d/%d  expected: %d/%d", i, item.encoded, value, count, item.value, item.count)
		}
	}
}
