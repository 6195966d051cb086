// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// Mint - create value new indices owned by owner at the right edge of
// the allocated space.
//
// caller must satisfy the engine's authority predicate. owner may be
// the zero address, in which case it resolves to the issuer. If the
// range immediately to the left of the new indices already has
// (owner, when, tag, custodian=0), the new indices extend it instead
// of creating a new range.
func (e *Engine) Mint(caller, owner account.Address, value uint64, when uint32, tag Tag) error {
	if !e.authority(caller) {
		return fault.ErrPermissionDenied
	}
	if 0 == value {
		return fault.ErrZeroValue
	}
	if value > MaxValue {
		return fault.ErrValueTooLarge
	}
	if uint64(e.upperBound)+value > uint64(MaxIndex) {
		return fault.ErrUpperBoundExceeded
	}

	owner = e.resolveOwnerID(owner)

	if _, err := e.oracle.TransferTokens(e.issuer, e.issuer, owner, ZeroFlags{}); nil != err {
		return fault.ErrComplianceRejected
	}

	start := e.upperBound + 1
	stop := start + Index(value)

	merged := false
	if e.upperBound > 0 {
		if leftPointer, ok := e.grid[e.upperBound]; ok {
			if e.compareRanges(leftPointer, owner, when, tag, account.Zero) {
				e.extendRange(leftPointer, stop)
				merged = true
			}
		}
	}
	if !merged {
		e.setRange(start, owner, stop, when, tag, account.Zero)
		e.replaceInBalanceRange(owner, 0, start)
	}

	e.balanceOf(owner).Balance += value
	e.totalSupply += value
	e.upperBound = stop - 1

	e.events.RangeSet(RangeSetEvent{Tag: tag, Start: start, Stop: stop, Time: when})
	e.events.Transfer(TransferEvent{From: account.Zero, To: owner, Value: value})
	e.events.TransferRange(TransferRangeEvent{From: account.Zero, To: owner, Start: start, Stop: stop, Amount: value})

	e.infof("mint: owner=%s value=%d tag=%x start=%d stop=%d", owner, value, tag, start, stop)

	return nil
}

// extendRange - grow a live range's stop boundary in place, repairing
// its grid markers.
func (e *Engine) extendRange(pointer, newStop Index) {
	rec := e.store[pointer]
	e.grid.setRangePointers(pointer, rec.stop, 0)
	rec.stop = newStop
	e.grid.setRangePointers(pointer, newStop, pointer)
}
