package report

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Series Shaping Report\n\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Configuration
	sb.WriteString("## Configuration\n\n")
	sb.WriteString("| Setting | Value |\n")
	sb.WriteString("|---------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Max Delta | %g |\n", r.MaxDelta))
	if r.Window != nil {
		sb.WriteString(fmt.Sprintf("| Window | [%g, %g) |\n", r.Window.Start, r.Window.End))
	} else {
		sb.WriteString("| Window | none |\n")
	}
	sb.WriteString("\n")

	// Series
	sb.WriteString("## Series\n\n")
	if len(r.Series) > 0 {
		sb.WriteString("| Series | In | Out | DupGroups | Adjusted | Boundary | First | Last | Min | Max | Mean | Fingerprint |\n")
		sb.WriteString("|--------|----|-----|-----------|----------|----------|-------|------|-----|-----|------|-------------|\n")
		for _, s := range r.Series {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | %d | %g | %g | %.4f | %.4f | %.4f | %s |\n",
				s.Name, s.InputPoints, s.OutputPoints,
				s.DuplicateGroups, s.PointsAdjusted, s.BoundaryPoints,
				s.FirstTime, s.LastTime,
				s.Stats.Min, s.Stats.Max, s.Stats.Mean,
				s.Fingerprint))
		}
	} else {
		sb.WriteString("No series processed.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
