// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/parkingspot/fault"
)

// Name - a 64 bit host account name
//
// text form is up to 13 characters from nameCharacters, 5 bits
// per character for the first 12 and 4 bits for the last one
type Name uint64

const (
	nameCharacters = ".12345abcdefghijklmnopqrstuvwxyz"
	maxNameLength  = 13
	nameBytes      = 8
)

// NameFromString - convert a text name to its 64 bit value
//
// only names that convert back to exactly the same text are accepted
func NameFromString(s string) (Name, error) {
	if "" == s {
		return 0, fault.ZeroAccountNameNotAllowed
	}
	if len(s) > maxNameLength {
		return 0, fault.InvalidAccountName
	}

	value := uint64(0)
	for i := 0; i < len(s); i += 1 {
		c := strings.IndexByte(nameCharacters, s[i])
		if c < 0 {
			return 0, fault.InvalidAccountName
		}
		if i < maxNameLength-1 {
			value |= uint64(c) << uint(64-5*(i+1))
		} else {
			if c > 0x0f {
				return 0, fault.InvalidAccountName
			}
			value |= uint64(c)
		}
	}

	n := Name(value)
	if n.String() != s {
		return 0, fault.InvalidAccountName
	}
	return n, nil
}

// NameFromBytes - decode the 8 byte big endian form
func NameFromBytes(buffer []byte) (Name, error) {
	if nameBytes != len(buffer) {
		return 0, fault.CannotDecodeAccount
	}
	return Name(binary.BigEndian.Uint64(buffer)), nil
}

// String - the text form with trailing dots removed
func (n Name) String() string {
	s := make([]byte, maxNameLength)
	tmp := uint64(n)
	for i := 0; i < maxNameLength; i += 1 {
		if 0 == i {
			s[maxNameLength-1] = nameCharacters[tmp&0x0f]
			tmp >>= 4
		} else {
			s[maxNameLength-1-i] = nameCharacters[tmp&0x1f]
			tmp >>= 5
		}
	}
	return strings.TrimRight(string(s), ".")
}

// Bytes - the 8 byte big endian form, used in storage keys
func (n Name) Bytes() []byte {
	buffer := make([]byte, nameBytes)
	binary.BigEndian.PutUint64(buffer, uint64(n))
	return buffer
}

// IsEmpty - true for the zero name
func (n Name) IsEmpty() bool {
	return 0 == n
}

// MarshalText - convert name to text
//
// the zero name is an empty string, which UnmarshalText rejects
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText - convert text into a name
func (n *Name) UnmarshalText(s []byte) error {
	name, err := NameFromString(string(s))
	if nil != err {
		return err
	}
	*n = name
	return nil
}
