// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - runs pushed actions against the registry
//
// one action at a time: the action and every inline action it
// causes share a single database transaction, any failure aborts
// the whole lot and receipts are only delivered after a commit
package host
