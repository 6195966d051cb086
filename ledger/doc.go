// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a non-fungible security-token ledger that tracks
// ownership of a contiguous 48-bit index space in compressed ranges
// rather than per-index records.
//
// Each live range [start, stop) carries an owner, an optional
// custodian, a time lock and a 2-byte tag. The Engine maintains the
// range store, a sparse pointer grid for sub-linear containment
// lookup, and a per-account index of range-start pointers, and
// implements mint, burn, range modification and the transfer planner
// and commit routines described by the range-ledger design.
//
// Engine state is not a package-level singleton: every operation is a
// method on an explicit *Engine so that a process can host more than
// one ledger. Engine is not safe for concurrent use - callers must
// serialize operations on a given Engine, matching the one
// transaction at a time model the planner and commit routines assume.
package ledger
