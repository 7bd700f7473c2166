// Package metrics declares the Prometheus collectors shared by the molalign
// packages. Collectors are registered on the default registry at init via
// promauto and are safe for concurrent use.
//
// Alignment: AlignmentsTotal, AlignmentErrorsTotal, CandidatesEvaluated,
// TruncatedSearchesTotal, AlignDurationSeconds, ConformersDroppedTotal.
// Conversion: ConversionsTotal, ConversionDurationSeconds.
// Logging: LogEntriesTotal, LogErrorsTotal (fed by the logging hook).
package metrics
