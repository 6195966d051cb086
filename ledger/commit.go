// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// transferSingleRange - commit ownership of [start, stop) to to. The
// interval must lie within the range enclosed by pointer, which is
// owned by from. time is reset to 0 and custodian is set to the given
// value on the transferred slice.
//
// The four cases from the design (exact match / left-aligned /
// right-aligned / strictly interior) all reduce to: split at stop if
// the enclosing range extends past it, split at start if the enclosing
// range starts before it, then resolve the now-exact [start, stop)
// slot against its neighbors.
func (e *Engine) transferSingleRange(pointer Index, from, to account.Address, start, stop Index, custodian account.Address) {
	rec := e.store[pointer]
	rangeStop := rec.stop

	if rangeStop > stop {
		e.splitRange(stop)
	}
	if pointer < start {
		e.splitRange(start)
	}

	e.commitExactRange(start, stop, from, to, custodian)

	e.events.TransferRange(TransferRangeEvent{From: from, To: to, Start: start, Stop: stop, Amount: uint64(stop - start)})
}

// commitExactRange - resolve ownership of the range that starts
// exactly at start and stops exactly at stop, merging with either
// neighbor that already matches the target (to, 0, tag, custodian).
func (e *Engine) commitExactRange(start, stop Index, from, to account.Address, custodian account.Address) {
	rec := e.store[start]
	tag := rec.tag

	var prevPointer Index
	left := false
	if start > 1 {
		prevPointer = e.grid.getPointer(start - 1)
		left = e.compareRanges(prevPointer, to, 0, tag, custodian)
	}
	right := e.compareRanges(stop, to, 0, tag, custodian)

	switch {
	case !left && !right:
		rec.owner = to
		rec.custodian = custodian
		rec.time = 0
		e.replaceInBalanceRange(from, start, 0)
		e.replaceInBalanceRange(to, 0, start)

	case left && !right:
		e.deleteRange(start)
		e.replaceInBalanceRange(from, start, 0)
		e.extendRange(prevPointer, stop)

	case !left && right:
		newStop := e.store[stop].stop
		e.deleteRange(stop)
		e.replaceInBalanceRange(to, stop, 0)
		rec.owner = to
		rec.custodian = custodian
		rec.time = 0
		e.replaceInBalanceRange(from, start, 0)
		e.replaceInBalanceRange(to, 0, start)
		e.extendRange(start, newStop)

	default: // left && right
		newStop := e.store[stop].stop
		e.deleteRange(start)
		e.deleteRange(stop)
		e.replaceInBalanceRange(from, start, 0)
		e.replaceInBalanceRange(to, stop, 0)
		e.extendRange(prevPointer, newStop)
	}
}

// transferMultipleRanges - commit a value-limited prefix of selected
// ranges, splitting the last one if it overshoots the remaining
// value. Emits a single aggregate Transfer event plus one
// TransferRange per committed sub-range, and invokes the
// transferTokenRange policy hook per sub-range.
func (e *Engine) transferMultipleRanges(from, to account.Address, value uint64, selected []Index, custodian account.Address) error {
	e.events.Transfer(TransferEvent{From: from, To: to, Value: value})

	remaining := value
	for _, p := range selected {
		rec := e.store[p]
		length := uint64(rec.stop - p)
		stop := rec.stop
		if remaining < length {
			stop = p + Index(remaining)
		}
		tag := rec.tag

		e.transferSingleRange(p, from, to, p, stop, custodian)
		remaining -= uint64(stop - p)

		if nil != e.policy && !e.policy.TransferTokenRange(TransferTokenRangeArgs{From: from, To: to, Start: p, Stop: stop, Tag: tag}) {
			return fault.ErrPolicyRejected
		}
		if 0 == remaining {
			break
		}
	}

	if remaining > 0 {
		fault.Panicf("transferMultipleRanges: selection exhausted with %d of %d remaining", remaining, value)
	}

	e.balanceOf(from).Balance -= value
	e.balanceOf(to).Balance += value

	return nil
}
