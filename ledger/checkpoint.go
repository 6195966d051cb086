// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// checkpoint is a snapshot of every slot a commit phase can touch,
// taken immediately before a mutation that is still followed by a
// collaborator call (a policy hook or a custodian callback) able to
// reject. Per spec.md §5 ("implementers must either use an MVCC
// snapshot, a checkpoint of affected slots, or perform all permission
// checks before mutation"), a commit path that cannot move every
// rejectable check ahead of its first mutation takes this snapshot
// instead and calls restore on the rejection path.
type checkpoint struct {
	store        map[Index]rangeRecord
	grid         pointerGrid
	balances     map[account.Address]AccountBalance
	custBalances map[account.Address]map[account.Address]uint64
	upperBound   Index
	totalSupply  uint64
	totalBurned  uint64
}

// snapshot copies every mutable slot by value, so later in-place
// mutation of the live maps/structs cannot reach back into the
// checkpoint.
func (e *Engine) snapshot() *checkpoint {
	cp := &checkpoint{
		store:        make(map[Index]rangeRecord, len(e.store)),
		grid:         make(pointerGrid, len(e.grid)),
		balances:     make(map[account.Address]AccountBalance, len(e.balances)),
		custBalances: make(map[account.Address]map[account.Address]uint64, len(e.custBalances)),
		upperBound:   e.upperBound,
		totalSupply:  e.totalSupply,
		totalBurned:  e.totalBurned,
	}
	for pointer, rec := range e.store {
		cp.store[pointer] = *rec
	}
	for i, p := range e.grid {
		cp.grid[i] = p
	}
	for addr, b := range e.balances {
		cp.balances[addr] = AccountBalance{Balance: b.Balance, Ranges: append([]Index(nil), b.Ranges...)}
	}
	for custodian, beneficiaries := range e.custBalances {
		m := make(map[account.Address]uint64, len(beneficiaries))
		for beneficiary, v := range beneficiaries {
			m[beneficiary] = v
		}
		cp.custBalances[custodian] = m
	}
	return cp
}

// restore rewinds the engine to cp, discarding every mutation made
// since the matching snapshot call.
func (e *Engine) restore(cp *checkpoint) {
	store := make(map[Index]*rangeRecord, len(cp.store))
	for pointer, rec := range cp.store {
		r := rec
		store[pointer] = &r
	}
	e.store = store

	grid := make(pointerGrid, len(cp.grid))
	for i, p := range cp.grid {
		grid[i] = p
	}
	e.grid = grid

	balances := make(map[account.Address]*AccountBalance, len(cp.balances))
	for addr, b := range cp.balances {
		balances[addr] = &AccountBalance{Balance: b.Balance, Ranges: append([]Index(nil), b.Ranges...)}
	}
	e.balances = balances

	custBalances := make(map[account.Address]map[account.Address]uint64, len(cp.custBalances))
	for custodian, beneficiaries := range cp.custBalances {
		m := make(map[account.Address]uint64, len(beneficiaries))
		for beneficiary, v := range beneficiaries {
			m[beneficiary] = v
		}
		custBalances[custodian] = m
	}
	e.custBalances = custBalances

	e.upperBound = cp.upperBound
	e.totalSupply = cp.totalSupply
	e.totalBurned = cp.totalBurned
}
