package report

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/serieslab/stepseries"
	"github.com/serieslab/stepseries/fingerprint"
	"github.com/serieslab/stepseries/observability"
)

// Generator shapes named series with a fixed configuration and accumulates
// one summary per processed series. Not safe for concurrent use.
type Generator struct {
	maxDelta float64
	window   *stepseries.Window
	logger   *log.Logger
	now      func() time.Time
	newRunID func() string

	summaries []SeriesSummary
}

// GeneratorOptions contains configuration for creating a Generator.
type GeneratorOptions struct {
	// MaxDelta clamps the timestamp adjustments applied to duplicates.
	// Zero means stepseries.DefaultMaxDelta.
	MaxDelta float64

	// Window, when set, squashes every processed series into it.
	Window *stepseries.Window

	Logger *log.Logger
}

// NewGenerator creates a new report generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	maxDelta := opts.MaxDelta
	if maxDelta == 0 {
		maxDelta = stepseries.DefaultMaxDelta
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var window *stepseries.Window
	if opts.Window != nil {
		w := *opts.Window
		window = &w
	}

	return &Generator{
		maxDelta: maxDelta,
		window:   window,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newRunID: uuid.NewString,
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithRunID sets a custom run ID source for deterministic output.
func (g *Generator) WithRunID(fn func() string) *Generator {
	g.newRunID = fn
	return g
}

// Process shapes one named series: duplicate timestamps are resolved, then
// the result is squashed when a window is configured. The summary is
// recorded for the report and the shaped series returned. A failed series
// records nothing.
func (g *Generator) Process(name string, s stepseries.Series[float64]) (stepseries.Series[float64], error) {
	start := time.Now()

	groups, adjusted := countDuplicateRuns(s)

	resolved, err := stepseries.ResolveDuplicates(s, g.maxDelta)
	if err != nil {
		observability.RecordInvalidInput("resolve")
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	observability.RecordResolve(groups, adjusted)

	out := resolved
	boundary := 0
	if g.window != nil {
		squashed, err := stepseries.Squash(resolved, *g.window)
		if err != nil {
			observability.RecordInvalidInput("squash")
			return nil, fmt.Errorf("squash %q: %w", name, err)
		}
		boundary = len(squashed) - countInWindow(resolved, *g.window)
		observability.RecordSquash(boundary)
		out = squashed
	}

	summary := SeriesSummary{
		Name:            name,
		InputPoints:     len(s),
		DuplicateGroups: groups,
		OutputPoints:    len(out),
		PointsAdjusted:  adjusted,
		BoundaryPoints:  boundary,
		Stats:           computeStats(out.Values()),
		Fingerprint:     fingerprint.Compute(out),
	}
	if len(out) > 0 {
		summary.FirstTime = out[0].Time
		summary.LastTime = out[len(out)-1].Time
	}
	g.summaries = append(g.summaries, summary)

	observability.RecordSeriesProcessed()
	observability.RecordShapingDuration("process", time.Since(start).Seconds())
	g.logger.Printf("processed series %q: %d -> %d points (%d duplicate groups)",
		name, len(s), len(out), groups)

	return out, nil
}

// Build finalizes the report with the summaries accumulated so far.
func (g *Generator) Build() *Report {
	r := &Report{
		RunID:       g.newRunID(),
		GeneratedAt: g.now(),
		MaxDelta:    g.maxDelta,
		Series:      append([]SeriesSummary(nil), g.summaries...),
	}
	if g.window != nil {
		w := *g.window
		r.Window = &w
	}

	observability.RecordReportGenerated()
	g.logger.Printf("report %s: %d series", r.RunID, len(r.Series))

	return r
}

// countDuplicateRuns counts runs of equal adjacent timestamps and the
// points beyond the first in each run.
func countDuplicateRuns(s stepseries.Series[float64]) (groups, extras int) {
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j].Time == s[i].Time {
			j++
		}
		if j-i > 1 {
			groups++
			extras += j - i - 1
		}
		i = j
	}
	return groups, extras
}

// countInWindow counts points with Start <= Time < End.
func countInWindow(s stepseries.Series[float64], w stepseries.Window) int {
	n := 0
	for _, p := range s {
		if p.Time >= w.Start && p.Time < w.End {
			n++
		}
	}
	return n
}
