// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// ModifyRange - change the (time, tag) of the live range starting at
// pointer, then attempt to merge it with its left and right neighbors
// if they now share every field.
func (e *Engine) ModifyRange(caller account.Address, pointer Index, when uint32, tag Tag) error {
	if !e.authority(caller) {
		return fault.ErrPermissionDenied
	}

	gp, ok := e.grid[pointer]
	if !ok || gp != pointer {
		return fault.ErrInvalidIndex
	}
	rec, ok := e.store[pointer]
	if !ok || !rec.isLive() {
		return fault.ErrInvalidIndex
	}

	rec.time = when
	rec.tag = tag

	current := e.tryMergeLeft(pointer)
	e.tryMergeRight(current)

	final := e.store[current]
	e.events.RangeSet(RangeSetEvent{Tag: final.tag, Start: current, Stop: final.stop, Time: final.time})

	e.infof("modify_range: pointer=%d time=%d tag=%x", current, when, tag)

	return nil
}

// ModifyRanges - apply (time, tag) across every index in [start, stop),
// splitting at either boundary if it falls mid-range, then sweeping
// left to right merging consecutive ranges that now share every
// field.
func (e *Engine) ModifyRanges(caller account.Address, start, stop Index, when uint32, tag Tag) error {
	if !e.authority(caller) {
		return fault.ErrPermissionDenied
	}
	if 0 == start || start >= stop || stop > e.upperBound+1 {
		return fault.ErrInvalidIndex
	}

	e.splitRange(start)
	if stop <= e.upperBound {
		e.splitRange(stop)
	}

	for current := start; current < stop; {
		rec, ok := e.store[current]
		if !ok || !rec.isLive() {
			return fault.ErrInvalidIndex
		}
		rec.time = when
		rec.tag = tag
		current = rec.stop
	}

	current := e.tryMergeLeft(start)
	for {
		for e.tryMergeRight(current) {
		}
		rec := e.store[current]
		e.events.RangeSet(RangeSetEvent{Tag: rec.tag, Start: current, Stop: rec.stop, Time: rec.time})
		if rec.stop >= stop {
			break
		}
		current = rec.stop
	}

	e.infof("modify_ranges: start=%d stop=%d time=%d tag=%x", start, stop, when, tag)

	return nil
}

// tryMergeLeft - absorb pointer's range into its left neighbor if the
// neighbor now shares every field. Returns the surviving start pointer
// (pointer itself if no merge happened).
func (e *Engine) tryMergeLeft(pointer Index) Index {
	if pointer <= 1 {
		return pointer
	}
	rec := e.store[pointer]
	leftPointer := e.grid.getPointer(pointer - 1)
	if !e.compareRanges(leftPointer, rec.owner, rec.time, rec.tag, rec.custodian) {
		return pointer
	}

	stop := rec.stop
	e.deleteRange(pointer)
	e.replaceInBalanceRange(rec.owner, pointer, 0)
	e.extendRange(leftPointer, stop)

	return leftPointer
}

// tryMergeRight - absorb pointer's right neighbor into pointer's range
// if it shares every field. Reports whether a merge happened, so
// callers can loop to absorb a run of matching neighbors.
func (e *Engine) tryMergeRight(pointer Index) bool {
	rec := e.store[pointer]
	rightPointer := rec.stop
	if rightPointer > e.upperBound {
		return false
	}

	rrec, ok := e.store[rightPointer]
	if !ok || !rrec.isLive() {
		return false
	}
	if !e.compareRanges(rightPointer, rec.owner, rec.time, rec.tag, rec.custodian) {
		return false
	}

	newStop := rrec.stop
	e.deleteRange(rightPointer)
	e.replaceInBalanceRange(rec.owner, rightPointer, 0)
	e.extendRange(pointer, newStop)

	return true
}
