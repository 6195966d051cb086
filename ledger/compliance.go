// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// IdentityMetadata - the identity, rating and jurisdiction pair the
// compliance oracle returns for the two sides of a transfer.
type IdentityMetadata struct {
	AuthID    uint64
	IDs       [2]uint64
	Ratings   [2]Rating
	Countries [2]uint16
}

// ZeroFlags - post-condition hints passed to the compliance oracle's
// stateful call, in the order: sender balance will be zero, recipient
// balance was zero, sender custodial balance will be zero, recipient
// custodial balance was zero.
type ZeroFlags [4]bool

// ComplianceOracle - the external collaborator consulted on every
// transfer entry point. Out of scope for this engine: it is treated
// as a black box returning identity metadata plus an allow/deny
// decision.
type ComplianceOracle interface {
	// CheckTransfer - pure pre-check; may reject with an error.
	CheckTransfer(auth, from, to account.Address, senderWillBeZero bool) (IdentityMetadata, error)

	// TransferTokens - stateful commit-intent call; may reject with
	// an error. Called for its side effects even when the returned
	// metadata is discarded by the caller.
	TransferTokens(auth, from, to account.Address, zero ZeroFlags) (IdentityMetadata, error)
}

// CheckTransferArgs - arguments for the untagged pre-transfer policy
// hook (selector 0x70aaf928).
type CheckTransferArgs struct {
	From, To account.Address
	Value    uint64
}

// CheckTransferRangeArgs - arguments for a tag-scoped range check,
// used both by the planner (selector 0x5a5a8ad8) and by the explicit
// range-transfer entry point (selector 0x2d79c6d7).
type CheckTransferRangeArgs struct {
	From, To  account.Address
	Start     Index
	Stop      Index
	Tag       Tag
	Custodian account.Address
}

// TransferTokenRangeArgs - arguments for the post-commit per-range
// notification hook (selector 0xead529f5).
type TransferTokenRangeArgs struct {
	From, To account.Address
	Start    Index
	Stop     Index
	Tag      Tag
}

// TransferTokensCustodianArgs - arguments for the custodian-internal
// transfer hook (selector 0x8b5f1240).
type TransferTokensCustodianArgs struct {
	Custodian           account.Address
	From, To            account.Address
	Value                uint64
}

// PolicyHooks - optional tag-scoped collaborators consulted by the
// planner and commit routines. A false return from
// CheckTransferRangePlanner makes the planner skip that candidate
// range; a false return from any of the others aborts the operation
// with fault.ErrPolicyRejected. A nil PolicyHooks
// registry on the Engine is treated as "allow everything".
type PolicyHooks interface {
	// CheckTransfer - selector 0x70aaf928
	CheckTransfer(CheckTransferArgs) bool
	// CheckTransferRangePlanner - selector 0x5a5a8ad8
	CheckTransferRangePlanner(CheckTransferRangeArgs) bool
	// CheckTransferRangeExplicit - selector 0x2d79c6d7
	CheckTransferRangeExplicit(CheckTransferRangeArgs) bool
	// TransferTokenRange - selector 0xead529f5
	TransferTokenRange(TransferTokenRangeArgs) bool
	// TransferTokensCustodian - selector 0x8b5f1240
	TransferTokensCustodian(TransferTokensCustodianArgs) bool
}

// CustodianCallback - invoked when a transfer's destination is a
// custodian account, after the custodian's balance has been credited.
type CustodianCallback interface {
	ReceiveTransfer(beneficiary account.Address, value uint64) bool
}
