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
	"github.com/certshare/rangeledger/fault"
)

func TestMintCreatesRange(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)

	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	assert.EqualValues(t, 100, e.UpperBound())
	assert.EqualValues(t, 100, e.BalanceOf(a))
	assert.Equal(t, []RangeView{{Start: 1, Stop: 101, Owner: a}}, e.RangesOf(a))
}

func TestMintMergesWithMatchingLeftNeighbor(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)

	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))
	require.NoError(t, e.Mint(e.issuer, a, 50, 0, ZeroTag))

	assert.EqualValues(t, 150, e.UpperBound())
	assert.EqualValues(t, 150, e.BalanceOf(a))
	assert.Equal(t, []RangeView{{Start: 1, Stop: 151, Owner: a}}, e.RangesOf(a))
}

func TestMintDoesNotMergeDifferentTag(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)

	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))
	require.NoError(t, e.Mint(e.issuer, a, 50, 0, Tag{0xBE, 0xEF}))

	views := e.RangesOf(a)
	assert.Len(t, views, 2)
}

func TestMintRejectsZeroValue(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	err := e.Mint(e.issuer, testAddress(1), 0, 0, ZeroTag)
	assert.ErrorIs(t, err, fault.ErrZeroValue)
}

func TestMintRejectsPermissionDenied(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	e.authority = func(account.Address) bool { return false }
	err := e.Mint(testAddress(9), testAddress(1), 1, 0, ZeroTag)
	assert.ErrorIs(t, err, fault.ErrPermissionDenied)
}

func TestMintRejectsOverflow(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	e.upperBound = MaxIndex
	err := e.Mint(e.issuer, testAddress(1), 1, 0, ZeroTag)
	assert.ErrorIs(t, err, fault.ErrUpperBoundExceeded)
}

func TestMintExactlyReachesUpperLimit(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	require.NoError(t, e.Mint(e.issuer, a, uint64(MaxIndex), 0, ZeroTag))
	assert.EqualValues(t, MaxIndex, e.UpperBound())
}

func TestMintResolvesOwnerIDToIssuer(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	require.NoError(t, e.Mint(e.issuer, account.Zero, 10, 0, ZeroTag))
	assert.EqualValues(t, 10, e.BalanceOf(e.issuer))
}
