// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/parkingspot/chain"
)

func TestValid(t *testing.T) {
	assert.True(t, chain.Valid(chain.Live))
	assert.True(t, chain.Valid(chain.Testing))
	assert.True(t, chain.Valid(chain.Local))
	assert.False(t, chain.Valid("bitmark"))
	assert.False(t, chain.Valid(""))
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "parkingspot", chain.DatabaseName(chain.Live))
	assert.Equal(t, "parkingspot-local", chain.DatabaseName(chain.Local))
}
