// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. scope        = contract account name as big endian uint64 (8 bytes)
// 4. spot id      = big endian uint64 (8 bytes)
// 5. varint       = util.ToVarint64 encoding
//
// Spots:
//
//   S ++ scope ++ spot id      - parking spot records
//                                data: zone id(varint) ++ flags(byte) ++ owner(uint64) ++ count(varint) ++ [ time code(varint) ]
//
// Version:
//
//   0x00 ++ "VERSION"          - database version (big endian uint32)
package storage
