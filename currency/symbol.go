// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/parkingspot/fault"
)

const (
	maxCodeLength = 7
	maxPrecision  = 18
)

// Symbol - a token code and its number of decimal places
type Symbol struct {
	Precision uint8
	Code      string
}

// VTP - the default token accepted for parking payments
var VTP = Symbol{
	Precision: 4,
	Code:      "VTP",
}

// ParseSymbol - convert "4,VTP" to a symbol
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if 2 != len(parts) {
		return Symbol{}, fault.InvalidSymbol
	}

	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err {
		return Symbol{}, fault.InvalidSymbol
	}

	symbol := Symbol{
		Precision: uint8(precision),
		Code:      parts[1],
	}
	if !symbol.IsValid() {
		return Symbol{}, fault.InvalidSymbol
	}
	return symbol, nil
}

// IsValid - code is 1..7 upper case letters and precision at most 18
func (symbol Symbol) IsValid() bool {
	if symbol.Precision > maxPrecision {
		return false
	}
	if "" == symbol.Code || len(symbol.Code) > maxCodeLength {
		return false
	}
	for _, c := range symbol.Code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func (symbol Symbol) String() string {
	return strconv.Itoa(int(symbol.Precision)) + "," + symbol.Code
}

// MarshalText - convert a symbol into JSON
func (symbol Symbol) MarshalText() ([]byte, error) {
	return []byte(symbol.String()), nil
}

// UnmarshalText - convert a symbol from JSON
func (symbol *Symbol) UnmarshalText(s []byte) error {
	sym, err := ParseSymbol(string(s))
	if nil != err {
		return err
	}
	*symbol = sym
	return nil
}
