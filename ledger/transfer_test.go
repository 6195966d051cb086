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

func TestTransferMovesOldestRangesFirst(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, b := testAddress(1), testAddress(2)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	require.NoError(t, e.Transfer(a, b, 40))

	assert.EqualValues(t, 60, e.BalanceOf(a))
	assert.EqualValues(t, 40, e.BalanceOf(b))
	assert.Equal(t, []RangeView{{Start: 41, Stop: 101, Owner: a}}, e.RangesOf(a))
	assert.Equal(t, []RangeView{{Start: 1, Stop: 41, Owner: b}}, e.RangesOf(b))
}

func TestTransferRejectsSelfTransfer(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a := testAddress(1)
	require.NoError(t, e.Mint(e.issuer, a, 10, 0, ZeroTag))

	err := e.Transfer(a, a, 1)
	assert.ErrorIs(t, err, fault.ErrSelfTransfer)
}

func TestTransferRejectsInsufficientBalance(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, b := testAddress(1), testAddress(2)
	require.NoError(t, e.Mint(e.issuer, a, 10, 0, ZeroTag))

	err := e.Transfer(a, b, 11)
	assert.ErrorIs(t, err, fault.ErrInsufficientBalance)
}

func TestTransferFromDebitsAllowanceForThirdPartySpender(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, b, spender := testAddress(1), testAddress(2), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))
	e.Approve(a, spender, 50)

	require.NoError(t, e.TransferFrom(spender, a, b, 30))

	assert.EqualValues(t, 70, e.BalanceOf(a))
	assert.EqualValues(t, 30, e.BalanceOf(b))
	assert.EqualValues(t, 20, e.Allowance(a, spender))
}

func TestTransferFromRejectsInsufficientAllowance(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, b, spender := testAddress(1), testAddress(2), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))
	e.Approve(a, spender, 10)

	err := e.TransferFrom(spender, a, b, 30)
	assert.ErrorIs(t, err, fault.ErrInsufficientAllowance)
}

func TestTransferFromBySenderItselfSkipsAllowanceCheck(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, b := testAddress(1), testAddress(2)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	require.NoError(t, e.TransferFrom(a, a, b, 30))
	assert.EqualValues(t, 30, e.BalanceOf(b))
}

func TestTransferRangeWholeRangeExactValue(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, c := testAddress(1), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	require.NoError(t, e.TransferRange(a, c, 1, 101))

	assert.EqualValues(t, 0, e.BalanceOf(a))
	assert.EqualValues(t, 100, e.BalanceOf(c))
}

func TestTransferRangeRejectsNotOwner(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, c := testAddress(1), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))

	err := e.TransferRange(c, a, 1, 50)
	assert.ErrorIs(t, err, fault.ErrNotOwner)
}

func TestTransferRangeRejectsTimeLocked(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, c := testAddress(1), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 5000, ZeroTag))

	err := e.TransferRange(a, c, 1, 50)
	assert.ErrorIs(t, err, fault.ErrTimeLocked)
}

func TestTransferRangeBecomesAvailableAtExactExpiry(t *testing.T) {
	e := newTestEngine(t, time.Unix(5000, 0))
	a, c := testAddress(1), testAddress(3)
	require.NoError(t, e.Mint(e.issuer, a, 100, 5000, ZeroTag))

	require.NoError(t, e.TransferRange(a, c, 1, 50))
	assert.EqualValues(t, 49, e.BalanceOf(c))
}

func TestTransferRangeRejectsCustodiedRange(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	a, c, custodian := testAddress(1), testAddress(3), testAddress(4)
	require.NoError(t, e.Mint(e.issuer, a, 100, 0, ZeroTag))
	e.store[1].custodian = custodian

	err := e.TransferRange(a, c, 1, 50)
	assert.ErrorIs(t, err, fault.ErrCustodianSendDisallowed)
}

func TestTransferCustodianMovesBeneficiaryBookkeepingOnly(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	custodian, beneficiary1, beneficiary2 := testAddress(5), testAddress(1), testAddress(2)
	e.custBalances[custodian] = map[account.Address]uint64{beneficiary1: 100}
	e.balances[custodian] = &AccountBalance{Balance: 100, Ranges: []Index{1}}
	e.store[1] = &rangeRecord{owner: custodian, stop: 101, custodian: custodian}
	e.grid.setRangePointers(1, 101, 1)
	e.upperBound = 100

	require.NoError(t, e.TransferCustodian(custodian, beneficiary1, beneficiary2, 40))

	assert.EqualValues(t, 60, e.custBalances[custodian][beneficiary1])
	assert.EqualValues(t, 40, e.custBalances[custodian][beneficiary2])
	// the underlying range never moves off the custodian's address
	assert.Equal(t, custodian, e.store[1].owner)
}

func TestEndToEndScenariosS1ThroughS6(t *testing.T) {
	e := newTestEngine(t, time.Unix(1000, 0))
	A, B, C := testAddress(1), testAddress(2), testAddress(3)

	// S1
	require.NoError(t, e.Mint(e.issuer, A, 100, 0, ZeroTag))
	assert.EqualValues(t, 100, e.UpperBound())
	assert.Equal(t, []RangeView{{Start: 1, Stop: 101, Owner: A}}, e.RangesOf(A))

	// S2
	require.NoError(t, e.Mint(e.issuer, A, 50, 0, ZeroTag))
	assert.Equal(t, []RangeView{{Start: 1, Stop: 151, Owner: A}}, e.RangesOf(A))
	assert.EqualValues(t, 150, e.UpperBound())

	// S3
	require.NoError(t, e.Transfer(A, B, 40))
	assert.EqualValues(t, 110, e.BalanceOf(A))
	assert.EqualValues(t, 40, e.BalanceOf(B))

	// S4
	require.NoError(t, e.ModifyRanges(e.issuer, 41, 91, 0, Tag{0xBE, 0xEF}))
	views := e.RangesOf(A)
	require.Len(t, views, 2)
	assert.EqualValues(t, 41, views[0].Start)
	assert.EqualValues(t, 91, views[0].Stop)
	assert.Equal(t, Tag{0xBE, 0xEF}, views[0].Tag)
	assert.EqualValues(t, 91, views[1].Start)
	assert.EqualValues(t, 151, views[1].Stop)

	// S5
	require.NoError(t, e.TransferRange(A, C, 100, 120))
	assert.EqualValues(t, 90, e.BalanceOf(A))
	assert.EqualValues(t, 20, e.BalanceOf(C))

	// S6
	bRange := e.RangesOf(B)
	require.Len(t, bRange, 1)
	require.NoError(t, e.Burn(e.issuer, bRange[0].Start, bRange[0].Stop))
	assert.EqualValues(t, 0, e.BalanceOf(B))
	assert.EqualValues(t, 150, e.UpperBound())

	require.NoError(t, e.Mint(e.issuer, B, 1, 0, ZeroTag))
	newB := e.RangesOf(B)
	require.Len(t, newB, 1)
	assert.EqualValues(t, 151, newB[0].Start)
}
