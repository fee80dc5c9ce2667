// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"sort"

	"github.com/bitmark-inc/parkingspot/account"
)

// Signatories - the accounts that authorised an action
type Signatories map[account.Name]struct{}

// NewSignatories - create a set from names
func NewSignatories(names ...account.Name) Signatories {
	s := make(Signatories, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// IsAuthorised - true if the account is in the set
func (s Signatories) IsAuthorised(n account.Name) bool {
	_, ok := s[n]
	return ok
}

// Names - sorted list of the accounts
func (s Signatories) Names() []account.Name {
	names := make([]account.Name, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}
