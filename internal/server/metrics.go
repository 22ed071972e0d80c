// ledgerprint/pdf - generate printable PDF invoices
// Copyright (C) 2026  The ledgerprint authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Possible values for the "result" label.
const (
	resultSuccess    = "success"
	resultInputError = "input_error"
	resultFailure    = "failure"
)

// Metrics holds the Prometheus collectors of the invoice server.
type Metrics struct {
	generated *prometheus.CounterVec
	duration  prometheus.Histogram
	size      prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) *Metrics {
	generated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoicepdf_documents_total",
			Help: "Number of invoice PDF requests, by result.",
		},
		[]string{"result"}, // success | input_error | failure
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "invoicepdf_generation_seconds",
			Help:    "Time taken to generate one invoice PDF.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. 2s
		},
	)
	size := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "invoicepdf_document_bytes",
			Help:    "Size of generated invoice PDFs.",
			Buckets: prometheus.ExponentialBuckets(8<<10, 2, 8), // 8KiB .. 1MiB
		},
	)

	registerer.MustRegister(generated, duration, size)

	// Make all result series visible from the start.
	for _, result := range []string{resultSuccess, resultInputError, resultFailure} {
		generated.WithLabelValues(result)
	}

	return &Metrics{
		generated: generated,
		duration:  duration,
		size:      size,
	}
}
