package report

// computeStats aggregates a value slice. The zero value covers the empty
// case.
func computeStats(values []float64) ValueStats {
	if len(values) == 0 {
		return ValueStats{}
	}

	minVal, maxVal := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}

	return ValueStats{
		Min:  minVal,
		Max:  maxVal,
		Mean: sum / float64(len(values)),
	}
}
