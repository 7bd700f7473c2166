// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Alignment Metrics
// =============================================================================

var (
	// AlignmentsTotal counts completed RMSD evaluations by mode
	// ("symmetric" or "plain") and fit ("superpose" or "fixed").
	AlignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "molalign_alignments_total",
			Help: "Total number of completed alignments by mode and fit",
		},
		[]string{"mode", "fit"},
	)

	// AlignmentErrorsTotal counts failed alignments by error kind.
	AlignmentErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "molalign_alignment_errors_total",
			Help: "Total number of failed alignments by error kind",
		},
		[]string{"kind"},
	)

	// CandidatesEvaluated observes how many correspondences one alignment scored.
	CandidatesEvaluated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "molalign_candidates_evaluated",
			Help:    "Number of correspondences evaluated per alignment",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7), // 1 .. 4096
		},
	)

	// TruncatedSearchesTotal counts resolver runs stopped by the candidate cap.
	TruncatedSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "molalign_truncated_searches_total",
			Help: "Total number of correspondence searches cut short by the candidate cap",
		},
	)

	// AlignDurationSeconds observes wall time per alignment.
	AlignDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "molalign_align_duration_seconds",
			Help:    "Latency of alignment calls",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
	)

	// ConformersDroppedTotal counts conformers removed as duplicates.
	ConformersDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "molalign_conformers_dropped_total",
			Help: "Total number of conformers filtered out as duplicates",
		},
	)
)

// =============================================================================
// Conversion Metrics
// =============================================================================

var (
	// ConversionsTotal counts toolkit calls by direction ("to_structure",
	// "to_smiles") and status ("ok", "error").
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "molalign_conversions_total",
			Help: "Total number of SMILES toolkit conversions by direction and status",
		},
		[]string{"direction", "status"},
	)

	// ConversionDurationSeconds observes toolkit latency by backend.
	ConversionDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "molalign_conversion_duration_seconds",
			Help:    "Latency of SMILES toolkit calls",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"direction"},
	)

	// ToolkitBreakerTransitionsTotal counts circuit breaker state changes of
	// external toolkits by target state ("open", "half-open", "closed").
	ToolkitBreakerTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "molalign_toolkit_breaker_transitions_total",
			Help: "Total number of toolkit circuit breaker state changes",
		},
		[]string{"toolkit", "state"},
	)
)

// =============================================================================
// Logging Metrics
// =============================================================================

var (
	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "molalign_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)

	// LogErrorsTotal counts error-level log entries specifically
	LogErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "molalign_log_errors_total",
			Help: "Total number of error log entries",
		},
	)
)
