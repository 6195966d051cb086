// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certshare/rangeledger/account"
)

func TestBurnRemovesFirstRangeWithoutLoweringUpperBound(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	b := testAddress(2)
	require.NoError(t, e.Mint(e.issuer, a, 40, 0, ZeroTag))
	require.NoError(t, e.Mint(e.issuer, b, 110, 0, ZeroTag))

	require.NoError(t, e.Burn(e.issuer, 1, 41))

	assert.EqualValues(t, 0, e.BalanceOf(a))
	assert.EqualValues(t, 150, e.UpperBound())
	assert.EqualValues(t, 150, e.TotalSupply())
	assert.EqualValues(t, 40, e.TotalBurned())
	assert.Empty(t, e.RangesOf(a))

	// subsequent mint to the burned owner does not merge with the hole
	require.NoError(t, e.Mint(e.issuer, a, 10, 0, ZeroTag))
	assert.Equal(t, []RangeView{{Start: 151, Stop: 161, Owner: a}}, e.RangesOf(a))
}

func TestBurnRemovesLastRange(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	require.NoError(t, e.Burn(e.issuer, 51, 101))

	assert.EqualValues(t, 50, e.BalanceOf(a))
	assert.EqualValues(t, 100, e.UpperBound())
	assert.Equal(t, []RangeView{{Start: 1, Stop: 51, Owner: a}}, e.RangesOf(a))
}

func TestBurnRejectsSpanningMultipleRanges(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	b := testAddress(2)
	require.NoError(t, e.Mint(e.issuer, a, 40, 0, ZeroTag))
	require.NoError(t, e.Mint(e.issuer, b, 60, 0, ZeroTag))

	err := e.Burn(e.issuer, 30, 60)
	assert.Error(t, err)
}

func TestBurnRejectsPermissionDenied(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	require.NoError(t, e.Mint(e.issuer, a, 10, 0, ZeroTag))

	e.authority = func(account.Address) bool { return false }
	err := e.Burn(testAddress(9), 1, 5)
	assert.Error(t, err)
}
