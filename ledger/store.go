// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// getPointer - bounds-checked read: the start pointer of the range that
// contains i, or an error if i lies outside the allocated space.
func (e *Engine) getPointer(i Index) (Index, error) {
	if 0 == i || i > e.upperBound {
		return 0, fault.ErrInvalidIndex
	}
	return e.grid.getPointer(i), nil
}

// setRange - upsert the descriptor at pointer and rewrite its grid
// boundaries. Each field is written only if it changed, matching the
// teacher store's habit of skipping redundant writes.
func (e *Engine) setRange(pointer Index, owner account.Address, stop Index, when uint32, tag Tag, custodian account.Address) {
	rec, exists := e.store[pointer]
	if !exists {
		rec = &rangeRecord{}
		e.store[pointer] = rec
	} else if rec.stop != stop {
		e.grid.setRangePointers(pointer, rec.stop, 0)
	}

	if rec.owner != owner {
		rec.owner = owner
	}
	if rec.stop != stop {
		rec.stop = stop
	}
	if rec.time != when {
		rec.time = when
	}
	if rec.tag != tag {
		rec.tag = tag
	}
	if rec.custodian != custodian {
		rec.custodian = custodian
	}

	e.grid.setRangePointers(pointer, stop, pointer)
}

// deleteRange - remove a range's descriptor and clear its grid
// boundaries. Used when a range is absorbed into a neighbour.
func (e *Engine) deleteRange(pointer Index) {
	rec, ok := e.store[pointer]
	if !ok {
		return
	}
	e.grid.setRangePointers(pointer, rec.stop, 0)
	delete(e.store, pointer)
}

// splitRange - ensure that split is itself a range start, by carving
// the enclosing range into [p, split) and [split, oldStop), both
// inheriting the original metadata. No-op if split already starts a
// range.
func (e *Engine) splitRange(split Index) {
	if p, ok := e.grid[split]; ok && p == split {
		return
	}

	p := e.grid.getPointer(split)
	rec := e.store[p]
	oldStop := rec.stop

	e.grid.setRangePointers(p, oldStop, 0)

	rec.stop = split
	e.grid.setRangePointers(p, split, p)

	e.store[split] = &rangeRecord{
		owner:     rec.owner,
		stop:      oldStop,
		time:      rec.time,
		tag:       rec.tag,
		custodian: rec.custodian,
	}
	e.grid.setRangePointers(split, oldStop, split)

	e.replaceInBalanceRange(rec.owner, 0, split)
}

// compareRanges - true iff the range at pointer is live and its
// (owner, time-after-lazy-zero, tag, custodian) matches the given
// values. Lazily expires a past time lock as a side effect.
func (e *Engine) compareRanges(pointer Index, owner account.Address, when uint32, tag Tag, custodian account.Address) bool {
	rec, ok := e.store[pointer]
	if !ok || !rec.isLive() {
		return false
	}
	e.expireIfPast(rec)
	return rec.owner == owner && rec.time == when && rec.tag == tag && rec.custodian == custodian
}

// checkTime - false if the range is still locked; true otherwise.
// A past-due lock is cleared as a side effect of the check.
func (e *Engine) checkTime(pointer Index) bool {
	rec, ok := e.store[pointer]
	if !ok {
		return false
	}
	e.expireIfPast(rec)
	return 0 == rec.time
}

// expireIfPast - zero a time lock that is now in the past.
func (e *Engine) expireIfPast(rec *rangeRecord) {
	if 0 != rec.time && uint32(e.now().Unix()) >= rec.time {
		rec.time = 0
	}
}
