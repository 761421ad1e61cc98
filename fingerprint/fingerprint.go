// Package fingerprint derives deterministic content identifiers for shaped
// series, used to cross-reference shaping reports with downstream artifacts.
package fingerprint

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/serieslab/stepseries"
)

// Compute returns a deterministic fingerprint of the series content.
// Formula: SHA256 over "time|value" lines, base58 encoded. Timestamps are
// rendered with 17 significant digits so distinct float64 values never
// collide.
func Compute[V any](s stepseries.Series[V]) string {
	h := sha256.New()
	for _, p := range s {
		fmt.Fprintf(h, "%.17g|%v\n", p.Time, p.Value)
	}
	return base58.Encode(h.Sum(nil))
}

// Times returns a fingerprint of a bare time index.
func Times(times []float64) string {
	h := sha256.New()
	for _, t := range times {
		fmt.Fprintf(h, "%.17g\n", t)
	}
	return base58.Encode(h.Sum(nil))
}
