// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// Index - a position in the 48-bit token index space
//
// Index 0 is the reserved null pointer. Valid allocated indices lie
// in [1, upperBound].
type Index uint64

// MaxIndex - the largest index the space can ever be grown to
// (2^48 - 2); one short of the 48-bit ceiling so that stop = MaxIndex+1
// still fits in 48 bits.
const MaxIndex Index = 1<<48 - 2

// MaxValue - the largest value a single mint or transfer may move;
// must fit in 48 bits.
const MaxValue uint64 = 1<<48 - 1

// Tag - a 2-byte opaque classifier attached to a range, used to scope
// policy hook lookups.
type Tag [2]byte

// ZeroTag - the default, unclassified tag
var ZeroTag Tag

// rangeRecord - the descriptor stored for a live range, keyed in the
// store by its start pointer.
//
// owner == account.Zero marks the slot unallocated (burned).
type rangeRecord struct {
	owner     account.Address
	stop      Index
	time      uint32 // unix seconds; 0 means unrestricted
	tag       Tag
	custodian account.Address
}

func (r *rangeRecord) isLive() bool {
	return nil != r && !r.owner.IsZero()
}

// AccountBalance - the per-owner balance and range-pointer index
//
// Ranges may contain zero entries left behind by in-place removals;
// callers must use RangesOf rather than reading Ranges directly.
type AccountBalance struct {
	Balance uint64
	Ranges  []Index
}

// RangeView - a read-only snapshot of one live range, returned by
// query operations.
type RangeView struct {
	Start     Index
	Stop      Index
	Owner     account.Address
	Time      uint32
	Tag       Tag
	Custodian account.Address
}

// Rating - the compliance rating returned by the oracle for one side
// of a transfer. A rating of 0 identifies a custodian account.
type Rating uint8

// IsCustodianRating - true when the rating marks the account as a
// custodian rather than a beneficial owner.
func (r Rating) IsCustodianRating() bool {
	return 0 == r
}
