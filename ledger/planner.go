// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
)

// findTransferable - select a prefix of candidates, in their stored
// order, whose combined length covers value.
//
// candidates is a balance-ranges vector and may contain zero
// tombstones, which are skipped. A candidate is also skipped if it is
// still time-locked, if its custodian does not match cust, or if the
// tag-scoped planner policy hook disallows it. Iteration stops as
// soon as the accumulated length reaches value; the returned slice may
// be shorter than candidates.
func (e *Engine) findTransferable(from, to, cust account.Address, value uint64, candidates []Index) ([]Index, error) {
	selected := make([]Index, 0, 1)
	var accumulated uint64

	for _, p := range candidates {
		if 0 == p {
			continue
		}
		if !e.checkTime(p) {
			continue
		}
		rec, ok := e.store[p]
		if !ok || !rec.isLive() {
			continue
		}
		if rec.custodian != cust {
			continue
		}
		if nil != e.policy && !e.policy.CheckTransferRangePlanner(CheckTransferRangeArgs{
			From:      from,
			To:        to,
			Start:     p,
			Stop:      rec.stop,
			Tag:       rec.tag,
			Custodian: rec.custodian,
		}) {
			continue
		}

		selected = append(selected, p)
		accumulated += uint64(rec.stop - p)
		if accumulated >= value {
			return selected, nil
		}
	}

	return nil, fault.ErrInsufficientTransferable
}
