// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusEventSink - an EventSink that counts events rather than
// broadcasting them. Intended for hosts (such as cmd/rangeledgerctl)
// that want operational visibility without wiring a real transport;
// event transport itself remains out of scope for this engine (see
// spec §1).
type PrometheusEventSink struct {
	transfers      prometheus.Counter
	transferRanges prometheus.Counter
	rangeSets      prometheus.Counter
}

// NewPrometheusEventSink - register the engine's event counters with
// reg. Pass prometheus.DefaultRegisterer for the global registry.
func NewPrometheusEventSink(reg prometheus.Registerer) *PrometheusEventSink {
	s := &PrometheusEventSink{
		transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rangeledger_transfers_total",
			Help: "Total number of Transfer events emitted by the engine.",
		}),
		transferRanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rangeledger_ranges_total",
			Help: "Total number of TransferRange events emitted by the engine.",
		}),
		rangeSets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rangeledger_range_sets_total",
			Help: "Total number of RangeSet events emitted by the engine (mint and modify).",
		}),
	}
	reg.MustRegister(s.transfers, s.transferRanges, s.rangeSets)
	return s
}

func (s *PrometheusEventSink) Transfer(TransferEvent) {
	s.transfers.Inc()
}

func (s *PrometheusEventSink) TransferRange(TransferRangeEvent) {
	s.transferRanges.Inc()
}

func (s *PrometheusEventSink) RangeSet(RangeSetEvent) {
	s.rangeSets.Inc()
}
