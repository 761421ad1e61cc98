// Package report assembles summaries of shaping runs and renders them as
// Markdown or CSV strings.
package report

import (
	"time"

	"github.com/serieslab/stepseries"
)

// Report summarizes one shaping run over a set of named series.
type Report struct {
	// Metadata
	RunID       string
	GeneratedAt time.Time

	// Configuration echo
	MaxDelta float64
	Window   *stepseries.Window // nil when no squashing was applied

	// Per-series summaries, in processing order
	Series []SeriesSummary
}

// SeriesSummary describes how one series was shaped.
type SeriesSummary struct {
	Name string

	// Input shape
	InputPoints     int
	DuplicateGroups int // runs of equal timestamps in the input

	// Output shape
	OutputPoints   int
	PointsAdjusted int // timestamps nudged by duplicate resolution
	BoundaryPoints int // synthetic points added by squashing

	// Output time span (zero when the output is empty)
	FirstTime float64
	LastTime  float64

	// Output value statistics
	Stats ValueStats

	// Deterministic content fingerprint of the output
	Fingerprint string
}

// ValueStats aggregates the values of a shaped series.
type ValueStats struct {
	Min  float64
	Max  float64
	Mean float64
}
