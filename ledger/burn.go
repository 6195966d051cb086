// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// Burn - destroy the indices in [start, stop), marking that slot
// unallocated. upperBound is never decreased: a burned slot is a
// permanent owner-zero hole, and a later mint to the same owner does
// not merge with it.
func (e *Engine) Burn(caller account.Address, start, stop Index) error {
	if !e.authority(caller) {
		return fault.ErrPermissionDenied
	}
	if 0 == start || start >= stop || stop > e.upperBound+1 {
		return fault.ErrInvalidIndex
	}

	enclosing := e.grid.getPointer(stop - 1)
	if enclosing > start {
		return fault.ErrInvalidIndex
	}

	rec := e.store[enclosing]
	if !rec.isLive() {
		return fault.ErrInvalidIndex
	}

	if rec.stop > stop {
		e.splitRange(stop)
	}
	if enclosing < start {
		e.splitRange(start)
	}

	target := e.store[start]
	owner := target.owner
	value := uint64(stop - start)

	e.replaceInBalanceRange(owner, start, 0)
	b := e.balanceOf(owner)
	b.Balance -= value
	e.totalSupply -= value
	e.totalBurned += value

	target.owner = account.Zero

	e.events.Transfer(TransferEvent{From: owner, To: account.Zero, Value: value})
	e.events.TransferRange(TransferRangeEvent{From: owner, To: account.Zero, Start: start, Stop: stop, Amount: value})

	e.infof("burn: owner=%s start=%d stop=%d", owner, start, stop)

	return nil
}
