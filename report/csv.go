package report

import (
	"fmt"
	"strings"
)

// RenderCSV renders per-series summaries as CSV string.
func RenderCSV(rows []SeriesSummary) string {
	var sb strings.Builder

	// Header
	sb.WriteString("name,input_points,output_points,duplicate_groups,points_adjusted,boundary_points,")
	sb.WriteString("first_time,last_time,value_min,value_max,value_mean,fingerprint\n")

	// Rows
	for _, s := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%d,%d,%d,%g,%g,%.6f,%.6f,%.6f,%s\n",
			s.Name,
			s.InputPoints,
			s.OutputPoints,
			s.DuplicateGroups,
			s.PointsAdjusted,
			s.BoundaryPoints,
			s.FirstTime,
			s.LastTime,
			s.Stats.Min,
			s.Stats.Max,
			s.Stats.Mean,
			s.Fingerprint,
		))
	}

	return sb.String()
}
