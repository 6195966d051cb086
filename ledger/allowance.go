// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// Approve - set the amount spender may move out of owner's balance
// via TransferFrom. The allowance table's broader semantics (e.g.
// increase/decrease-by-delta races) belong to a wider token base and
// are out of scope here; this engine only consumes a plain
// owner-to-spender ceiling.
func (e *Engine) Approve(owner, spender account.Address, value uint64) {
	if nil == e.allowances[owner] {
		e.allowances[owner] = make(map[account.Address]uint64)
	}
	e.allowances[owner][spender] = value
}

// Allowance - the amount spender may still move out of owner's
// balance.
func (e *Engine) Allowance(owner, spender account.Address) uint64 {
	return e.allowances[owner][spender]
}
