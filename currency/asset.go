// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/parkingspot/fault"
)

// Asset - an amount of a token in its smallest unit
//
// text form: "1.0000 VTP" where the digits after the point give
// the precision of the symbol
type Asset struct {
	Amount int64
	Symbol Symbol
}

// ParseAsset - convert "1.0000 VTP" to an asset
func ParseAsset(s string) (Asset, error) {
	parts := strings.Fields(s)
	if 2 != len(parts) {
		return Asset{}, fault.InvalidAsset
	}

	number := parts[0]
	negative := false
	if strings.HasPrefix(number, "-") {
		negative = true
		number = number[1:]
	}

	integer := number
	fraction := ""
	if dot := strings.IndexByte(number, '.'); dot >= 0 {
		integer = number[:dot]
		fraction = number[dot+1:]
		if "" == fraction {
			return Asset{}, fault.InvalidAsset
		}
	}
	if "" == integer {
		return Asset{}, fault.InvalidAsset
	}
	if len(fraction) > maxPrecision {
		return Asset{}, fault.InvalidAsset
	}

	symbol := Symbol{
		Precision: uint8(len(fraction)),
		Code:      parts[1],
	}
	if !symbol.IsValid() {
		return Asset{}, fault.InvalidSymbol
	}

	amount := uint64(0)
	for _, c := range integer + fraction {
		if c < '0' || c > '9' {
			return Asset{}, fault.InvalidAsset
		}
		digit := uint64(c - '0')
		if amount > (math.MaxInt64-digit)/10 {
			return Asset{}, fault.InvalidAsset
		}
		amount = amount*10 + digit
	}

	a := int64(amount)
	if negative {
		a = -a
	}
	return Asset{
		Amount: a,
		Symbol: symbol,
	}, nil
}

func (asset Asset) String() string {
	negative := asset.Amount < 0
	amount := uint64(asset.Amount)
	if negative {
		amount = uint64(-asset.Amount)
	}

	digits := strconv.FormatUint(amount, 10)
	p := int(asset.Symbol.Precision)
	if len(digits) <= p {
		digits = strings.Repeat("0", p-len(digits)+1) + digits
	}

	s := digits
	if p > 0 {
		s = digits[:len(digits)-p] + "." + digits[len(digits)-p:]
	}
	if negative {
		s = "-" + s
	}
	return s + " " + asset.Symbol.Code
}

// IsValid - symbol is valid
func (asset Asset) IsValid() bool {
	return asset.Symbol.IsValid()
}

// MarshalText - convert an asset into JSON
func (asset Asset) MarshalText() ([]byte, error) {
	return []byte(asset.String()), nil
}

// UnmarshalText - convert an asset from JSON
func (asset *Asset) UnmarshalText(s []byte) error {
	a, err := ParseAsset(string(s))
	if nil != err {
		return err
	}
	*asset = a
	return nil
}
