// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// Transfer - move value indices from caller's own balance to to,
// oldest ranges first. caller is both the authenticated identity and
// the source of funds.
func (e *Engine) Transfer(caller, to account.Address, value uint64) error {
	return e.transferByValue(caller, caller, to, value)
}

// TransferFrom - move value indices out of from's balance to to,
// authorized by caller via the allowance table. No authority
// normalization is applied: the allowance is checked and debited
// against caller, the planner draws on from's ranges, and the
// compliance oracle receives the untranslated caller as its auth
// argument.
//
// The allowance ceiling is only checked up front; it is debited after
// transferByValue has fully committed, so a later rejection (self
// transfer, insufficient balance, compliance, policy, or planner)
// leaves the allowance untouched rather than burning it for a
// transfer that never happened (spec.md §5).
func (e *Engine) TransferFrom(caller, from, to account.Address, value uint64) error {
	from = e.resolveOwnerID(from)

	debitAllowance := caller != from && caller != e.issuer
	if debitAllowance && e.allowances[from][caller] < value {
		return fault.ErrInsufficientAllowance
	}

	if err := e.transferByValue(caller, from, to, value); nil != err {
		return err
	}

	if debitAllowance {
		e.allowances[from][caller] -= value
	}
	return nil
}

// transferByValue - shared commit path for Transfer and TransferFrom.
func (e *Engine) transferByValue(caller, from, to account.Address, value uint64) error {
	from = e.resolveOwnerID(from)
	to = e.resolveOwnerID(to)

	if from == to {
		return fault.ErrSelfTransfer
	}
	if 0 == value {
		return fault.ErrZeroValue
	}
	if value > MaxValue {
		return fault.ErrValueTooLarge
	}

	fromBalance := e.BalanceOf(from)
	if fromBalance < value {
		return fault.ErrInsufficientBalance
	}

	zero := ZeroFlags{
		fromBalance == value,
		0 == e.BalanceOf(to),
		false,
		false,
	}
	meta, err := e.oracle.TransferTokens(caller, from, to, zero)
	if nil != err {
		return fault.ErrComplianceRejected
	}

	if nil != e.policy && !e.policy.CheckTransfer(CheckTransferArgs{From: from, To: to, Value: value}) {
		return fault.ErrPolicyRejected
	}

	candidateOwner := from
	custodian := account.Zero
	if meta.Ratings[0].IsCustodianRating() && from != e.issuer {
		candidateOwner = to
		custodian = from
	}

	b, ok := e.balances[candidateOwner]
	var candidates []Index
	if ok {
		candidates = b.Ranges
	}

	selected, err := e.findTransferable(from, to, custodian, value, candidates)
	if nil != err {
		return err
	}

	// From here on, the transferTokenRange policy hook (inside
	// transferMultipleRanges) and the custodian's ReceiveTransfer
	// callback are both consulted after the ranges/balances they
	// gate have already been mutated. Checkpoint first and buffer
	// events so a late rejection can fully unwind (spec.md §5).
	cp := e.snapshot()
	real := e.events
	buf := &bufferedEvents{}
	e.events = buf

	commitErr := e.transferMultipleRanges(from, to, value, selected, custodian)
	if nil == commitErr {
		commitErr = e.creditCustodianIfNeeded(meta, from, to, value)
	}

	e.events = real
	if nil != commitErr {
		e.restore(cp)
		return commitErr
	}
	buf.flush(e.events)

	e.infof("transfer: from=%s to=%s value=%d", from, to, value)

	return nil
}

// TransferRange - move exactly [start, stop) to to. caller must own
// the enclosing range directly (not via allowance), the range must
// carry no custodian and no active time lock, and caller may not
// itself be a custodian account.
func (e *Engine) TransferRange(caller, to account.Address, start, stop Index) error {
	to = e.resolveOwnerID(to)

	if 0 == start || start >= stop || stop > e.upperBound+1 {
		return fault.ErrInvalidIndex
	}
	if caller == to {
		return fault.ErrSelfTransfer
	}

	pointer, err := e.getPointer(start)
	if nil != err {
		return err
	}
	rec := e.store[pointer]
	if !rec.isLive() || rec.owner != caller {
		return fault.ErrNotOwner
	}
	if stop > rec.stop {
		return fault.ErrInvalidIndex
	}
	if !rec.custodian.IsZero() {
		return fault.ErrCustodianSendDisallowed
	}
	if !e.checkTime(pointer) {
		return fault.ErrTimeLocked
	}

	zero := ZeroFlags{
		e.BalanceOf(caller) == uint64(stop-start),
		0 == e.BalanceOf(to),
		false,
		false,
	}
	meta, err := e.oracle.TransferTokens(caller, caller, to, zero)
	if nil != err {
		return fault.ErrComplianceRejected
	}
	if meta.Ratings[0].IsCustodianRating() {
		return fault.ErrCustodianSendDisallowed
	}

	if nil != e.policy && !e.policy.CheckTransferRangeExplicit(CheckTransferRangeArgs{
		From: caller, To: to, Start: start, Stop: stop, Tag: rec.tag, Custodian: account.Zero,
	}) {
		return fault.ErrPolicyRejected
	}

	value := uint64(stop - start)

	// creditCustodianIfNeeded's ReceiveTransfer callback runs after
	// the split and balance update below, so the same checkpoint/
	// buffered-event unwind as transferByValue applies here.
	cp := e.snapshot()
	real := e.events
	buf := &bufferedEvents{}
	e.events = buf

	e.transferSingleRange(pointer, caller, to, start, stop, account.Zero)
	e.balanceOf(caller).Balance -= value
	e.balanceOf(to).Balance += value
	e.events.Transfer(TransferEvent{From: caller, To: to, Value: value})

	commitErr := e.creditCustodianIfNeeded(meta, caller, to, value)

	e.events = real
	if nil != commitErr {
		e.restore(cp)
		return commitErr
	}
	buf.flush(e.events)

	e.infof("transfer_range: from=%s to=%s start=%d stop=%d", caller, to, start, stop)

	return nil
}

// TransferCustodian - reassign custodial bookkeeping between two
// beneficiaries held under caller's custody. The underlying ranges
// stay owned by caller; only custBalances moves. The planner runs
// with cust = caller, per the design.
func (e *Engine) TransferCustodian(caller, fromBeneficiary, toBeneficiary account.Address, value uint64) error {
	fromBeneficiary = e.resolveOwnerID(fromBeneficiary)
	toBeneficiary = e.resolveOwnerID(toBeneficiary)

	if fromBeneficiary == toBeneficiary {
		return fault.ErrSelfTransfer
	}
	if 0 == value {
		return fault.ErrZeroValue
	}

	held := e.custBalances[caller][fromBeneficiary]
	if held < value {
		return fault.ErrInsufficientCustodialBalance
	}

	if _, err := e.oracle.CheckTransfer(caller, fromBeneficiary, toBeneficiary, held == value); nil != err {
		return fault.ErrComplianceRejected
	}

	if nil != e.policy && !e.policy.TransferTokensCustodian(TransferTokensCustodianArgs{
		Custodian: caller, From: fromBeneficiary, To: toBeneficiary, Value: value,
	}) {
		return fault.ErrPolicyRejected
	}

	b, ok := e.balances[caller]
	var candidates []Index
	if ok {
		candidates = b.Ranges
	}
	selected, err := e.findTransferable(fromBeneficiary, toBeneficiary, caller, value, candidates)
	if nil != err {
		return err
	}
	_ = selected // the ranges stay with caller; only custBalances bookkeeping below changes.

	if nil == e.custBalances[caller] {
		e.custBalances[caller] = make(map[account.Address]uint64)
	}
	e.custBalances[caller][fromBeneficiary] = held - value
	e.custBalances[caller][toBeneficiary] += value

	e.events.Transfer(TransferEvent{From: fromBeneficiary, To: toBeneficiary, Value: value})

	e.infof("transfer_custodian: custodian=%s from=%s to=%s value=%d", caller, fromBeneficiary, toBeneficiary, value)

	return nil
}

// creditCustodianIfNeeded - when to is a custodian account (recipient
// rating 0, not the issuer), credit custBalances and require the
// custodian's callback to accept the beneficiary credit.
func (e *Engine) creditCustodianIfNeeded(meta IdentityMetadata, from, to account.Address, value uint64) error {
	if !meta.Ratings[1].IsCustodianRating() || to == e.issuer {
		return nil
	}

	if nil == e.custBalances[to] {
		e.custBalances[to] = make(map[account.Address]uint64)
	}
	e.custBalances[to][from] += value

	cb, ok := e.custodians[to]
	if !ok {
		return nil
	}

	if !cb.ReceiveTransfer(from, value) {
		return fault.ErrPolicyRejected
	}

	return nil
}
