// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/certshare/rangeledger/account"
)

// AuthorityFunc - the permission gate consulted by mint, burn and the
// modify-range operators. Out of scope for this engine (see spec §1):
// the engine treats it as an opaque boolean predicate over the caller.
type AuthorityFunc func(caller account.Address) bool

// allowAll - the default authority predicate; every caller is
// permitted. Hosts that care about authorization wire WithAuthority.
func allowAll(account.Address) bool { return true }

// Engine - a single range-ledger instance.
//
// All mutable state lives here rather than in package-level
// variables, so a process can host more than one ledger and so tests
// never share state between cases. Engine is not safe for concurrent
// use: operations assume the single-threaded, serialized transaction
// model described by the design (no internal locking).
type Engine struct {
	log *logger.L
	now func() time.Time

	issuer    account.Address
	authority AuthorityFunc

	oracle     ComplianceOracle
	policy     PolicyHooks
	custodians map[account.Address]CustodianCallback
	events     EventSink

	store    map[Index]*rangeRecord
	grid     pointerGrid
	balances map[account.Address]*AccountBalance

	// allowances[owner][spender] = remaining amount owner lets spender move.
	allowances map[account.Address]map[account.Address]uint64

	// custBalances[custodian][beneficiary] = tokens the custodian holds for beneficiary.
	custBalances map[account.Address]map[account.Address]uint64

	upperBound  Index
	totalSupply uint64
	totalBurned uint64
}

// New - create an empty engine. issuer is the address that ownerID
// resolves to at entry points; oracle is required since every
// transfer entry point consults it.
func New(issuer account.Address, oracle ComplianceOracle, opts ...Option) *Engine {
	e := &Engine{
		now:        time.Now,
		issuer:     issuer,
		authority:  allowAll,
		oracle:     oracle,
		custodians: make(map[account.Address]CustodianCallback),
		events:     discardEvents{},
		store:      make(map[Index]*rangeRecord),
		grid:       newPointerGrid(),
		balances:   make(map[account.Address]*AccountBalance),
		allowances: make(map[account.Address]map[account.Address]uint64),
		custBalances: make(map[account.Address]map[account.Address]uint64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolveOwnerID - translate the issuing entity's logical identity
// (the zero address used as a sentinel for "ownerID") to its address.
func (e *Engine) resolveOwnerID(addr account.Address) account.Address {
	if addr.IsZero() {
		return e.issuer
	}
	return addr
}

// UpperBound - the current right edge of the allocated index space.
func (e *Engine) UpperBound() Index {
	return e.upperBound
}

// TotalSupply - sum of every account's live balance.
func (e *Engine) TotalSupply() uint64 {
	return e.totalSupply
}

// TotalBurned - sum of every burned range's length.
func (e *Engine) TotalBurned() uint64 {
	return e.totalBurned
}

// Now - the host-injected wall clock used for time-lock comparisons.
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) infof(format string, args ...interface{}) {
	if nil != e.log {
		e.log.Infof(format, args...)
	}
}
