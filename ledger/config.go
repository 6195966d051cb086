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

// Option - a functional option applied by New when constructing an
// Engine.
type Option func(*Engine)

// WithLogger - route the engine's informational logging through l.
// Invariant violations always panic via fault.Panicf regardless of
// whether a logger is configured.
func WithLogger(l *logger.L) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock - override the wall clock used for time-lock comparisons.
// Intended for tests that need deterministic "now" values.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithAuthority - set the permission predicate consulted by mint,
// burn and the modify-range operators.
func WithAuthority(fn AuthorityFunc) Option {
	return func(e *Engine) { e.authority = fn }
}

// WithPolicyHooks - wire the tag-scoped policy hook registry consulted
// by the transfer planner and commit routines. A nil registry (the
// default) allows every transfer.
func WithPolicyHooks(p PolicyHooks) Option {
	return func(e *Engine) { e.policy = p }
}

// WithEventSink - route Transfer/TransferRange/RangeSet events to sink
// instead of discarding them.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.events = sink }
}

// WithCustodian - register the callback invoked when a transfer's
// destination is custodian. May be called more than once to register
// several custodians.
func WithCustodian(custodian account.Address, cb CustodianCallback) Option {
	return func(e *Engine) { e.custodians[custodian] = cb }
}
