// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/certshare/rangeledger/account"

// TransferEvent - fungible-style total moved between two addresses.
// From or To may be account.Zero for mint/burn.
type TransferEvent struct {
	From, To account.Address
	Value    uint64
}

// TransferRangeEvent - the per-range delta behind one TransferEvent.
// Emitted once per committed sub-range, and for mint (From=Zero) and
// burn (To=Zero).
type TransferRangeEvent struct {
	From, To   account.Address
	Start, Stop Index
	Amount     uint64
}

// RangeSetEvent - emitted on mint and on any metadata modification.
type RangeSetEvent struct {
	Tag         Tag
	Start, Stop Index
	Time        uint32
}

// EventSink - the observable side-effect boundary. Event emission
// transport itself is out of scope for this engine (see spec §1); a
// host wires EventSink to whatever broadcast mechanism it has.
type EventSink interface {
	Transfer(TransferEvent)
	TransferRange(TransferRangeEvent)
	RangeSet(RangeSetEvent)
}

// discardEvents - the default EventSink, used when the caller does
// not wire one in. Not the zero value of an interface so that Engine
// methods never need a nil check before emitting.
type discardEvents struct{}

func (discardEvents) Transfer(TransferEvent)           {}
func (discardEvents) TransferRange(TransferRangeEvent) {}
func (discardEvents) RangeSet(RangeSetEvent)           {}

// bufferedEvents collects events emitted during a commit phase that
// is still paired with a checkpoint (see checkpoint.go): nothing
// reaches the host's real EventSink until the caller is sure the
// operation will not be rolled back.
type bufferedEvents struct {
	calls []func(EventSink)
}

func (b *bufferedEvents) Transfer(ev TransferEvent) {
	b.calls = append(b.calls, func(sink EventSink) { sink.Transfer(ev) })
}

func (b *bufferedEvents) TransferRange(ev TransferRangeEvent) {
	b.calls = append(b.calls, func(sink EventSink) { sink.TransferRange(ev) })
}

func (b *bufferedEvents) RangeSet(ev RangeSetEvent) {
	b.calls = append(b.calls, func(sink EventSink) { sink.RangeSet(ev) })
}

// flush replays every buffered call against sink, in emission order.
func (b *bufferedEvents) flush(sink EventSink) {
	for _, call := range b.calls {
		call(sink)
	}
}
