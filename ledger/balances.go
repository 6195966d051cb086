// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// balanceOf - fetch-or-create the balance record for addr.
func (e *Engine) balanceOf(addr account.Address) *AccountBalance {
	b, ok := e.balances[addr]
	if !ok {
		b = &AccountBalance{}
		e.balances[addr] = b
	}
	return b
}

// replaceInBalanceRange - update addr's range-pointer vector.
//
//   replaceInBalanceRange(addr, old, 0)   removes old
//   replaceInBalanceRange(addr, 0, new)   appends new
//   replaceInBalanceRange(addr, old, new) substitutes old for new
//
// For a nonzero old, the first entry equal to old is overwritten; if
// none is found, or old is 0, and new != 0, new is appended, so the
// vector keeps insertion order. Removed slots become zero
// tombstones rather than being compacted out, so that in-progress
// iteration over the vector (e.g. by the transfer planner) is never
// invalidated by a concurrent in-place edit from the same operation.
func (e *Engine) replaceInBalanceRange(addr account.Address, old, new Index) {
	if addr.IsZero() {
		return
	}
	b := e.balanceOf(addr)
	if 0 != old {
		for i, p := range b.Ranges {
			if p == old {
				b.Ranges[i] = new
				return
			}
		}
	}
	if 0 != new {
		b.Ranges = append(b.Ranges, new)
	}
}

// rangesOf - the compaction of addr's range-pointer vector as
// (start, stop) pairs, skipping zero tombstones.
func (e *Engine) rangesOf(addr account.Address) []RangeView {
	b, ok := e.balances[addr]
	if !ok {
		return nil
	}
	views := make([]RangeView, 0, len(b.Ranges))
	for _, p := range b.Ranges {
		if 0 == p {
			continue
		}
		rec, ok := e.store[p]
		if !ok || !rec.isLive() {
			continue
		}
		views = append(views, RangeView{
			Start:     p,
			Stop:      rec.stop,
			Owner:     rec.owner,
			Time:      rec.time,
			Tag:       rec.tag,
			Custodian: rec.custodian,
		})
	}
	return views
}

// BalanceOf - the current balance of addr.
func (e *Engine) BalanceOf(addr account.Address) uint64 {
	b, ok := e.balances[addr]
	if !ok {
		return 0
	}
	return b.Balance
}

// RangesOf - public range-enumeration query for an account.
func (e *Engine) RangesOf(addr account.Address) []RangeView {
	return e.rangesOf(addr)
}
