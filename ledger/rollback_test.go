// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
	"github.com/certshare/rangeledger/ledger"
	"github.com/certshare/rangeledger/ledger/mocks"
)

// ratedOracle is a ComplianceOracle stand-in that always permits, with
// caller-chosen ratings for the custodian-routing branches.
type ratedOracle struct {
	ratings [2]ledger.Rating
}

func (o ratedOracle) CheckTransfer(auth, from, to account.Address, senderWillBeZero bool) (ledger.IdentityMetadata, error) {
	return ledger.IdentityMetadata{Ratings: o.ratings}, nil
}

func (o ratedOracle) TransferTokens(auth, from, to account.Address, zero ledger.ZeroFlags) (ledger.IdentityMetadata, error) {
	return ledger.IdentityMetadata{Ratings: o.ratings}, nil
}

func rollbackTestAddress(b byte) account.Address {
	var a account.Address
	a[len(a)-1] = b
	return a
}

// TestTransferRollsBackEveryMutationWhenTransferTokenRangeHookRejects
// exercises the checkpoint/restore path added for the commit-phase
// rollback bug: the transferTokenRange policy hook is only ever
// consulted after transferMultipleRanges has already split ranges and
// moved balances, so a false return must undo all of it rather than
// leave the ledger half-committed.
func TestTransferRollsBackEveryMutationWhenTransferTokenRangeHookRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	policy := mocks.NewMockPolicyHooks(ctl)
	policy.EXPECT().CheckTransfer(gomock.Any()).Return(true)
	policy.EXPECT().CheckTransferRangePlanner(gomock.Any()).Return(true)
	policy.EXPECT().TransferTokenRange(gomock.Any()).Return(false)

	issuer := rollbackTestAddress(0xFF)
	a, b := rollbackTestAddress(1), rollbackTestAddress(2)

	e := ledger.New(issuer, ratedOracle{ratings: [2]ledger.Rating{1, 1}},
		ledger.WithClock(func() time.Time { return time.Unix(1000, 0) }),
		ledger.WithPolicyHooks(policy),
	)
	require.NoError(t, e.Mint(issuer, a, 100, 0, ledger.ZeroTag))

	rangesBefore := append([]ledger.RangeView{}, e.RangesOf(a)...)

	err := e.Transfer(a, b, 40)
	assert.ErrorIs(t, err, fault.ErrPolicyRejected)
	assert.EqualValues(t, 100, e.BalanceOf(a))
	assert.EqualValues(t, 0, e.BalanceOf(b))
	assert.Equal(t, rangesBefore, e.RangesOf(a))
	assert.Empty(t, e.RangesOf(b))
}

// TestTransferRangeRollsBackWhenCustodianCallbackRejects exercises the
// same checkpoint/restore path from the explicit-range entry point:
// creditCustodianIfNeeded calls the custodian's ReceiveTransfer only
// after the range split and balance update have already happened.
func TestTransferRangeRollsBackWhenCustodianCallbackRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	issuer := rollbackTestAddress(0xFF)
	a, custodian := rollbackTestAddress(1), rollbackTestAddress(9)

	cb := mocks.NewMockCustodianCallback(ctl)
	cb.EXPECT().ReceiveTransfer(a, uint64(40)).Return(false)

	e := ledger.New(issuer, ratedOracle{ratings: [2]ledger.Rating{1, 0}},
		ledger.WithClock(func() time.Time { return time.Unix(1000, 0) }),
		ledger.WithCustodian(custodian, cb),
	)
	require.NoError(t, e.Mint(issuer, a, 100, 0, ledger.ZeroTag))

	rangesBefore := append([]ledger.RangeView{}, e.RangesOf(a)...)

	err := e.TransferRange(a, custodian, 1, 41)
	assert.ErrorIs(t, err, fault.ErrPolicyRejected)
	assert.EqualValues(t, 100, e.BalanceOf(a))
	assert.EqualValues(t, 0, e.BalanceOf(custodian))
	assert.Equal(t, rangesBefore, e.RangesOf(a))
}

// TestTransferFromDoesNotDebitAllowanceOnSelfTransferRejection guards
// the ordering fix for the allowance debit: a later rejection inside
// transferByValue must not have already burned the spender's
// allowance.
func TestTransferFromDoesNotDebitAllowanceOnSelfTransferRejection(t *testing.T) {
	issuer := rollbackTestAddress(0xFF)
	a, spender := rollbackTestAddress(1), rollbackTestAddress(3)

	e := ledger.New(issuer, ratedOracle{ratings: [2]ledger.Rating{1, 1}},
		ledger.WithClock(func() time.Time { return time.Unix(1000, 0) }),
	)
	require.NoError(t, e.Mint(issuer, a, 100, 0, ledger.ZeroTag))
	e.Approve(a, spender, 50)

	err := e.TransferFrom(spender, a, a, 30)
	assert.ErrorIs(t, err, fault.ErrSelfTransfer)
	assert.EqualValues(t, 50, e.Allowance(a, spender))
}
