package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sortlab/internal/compare"
	"github.com/san-kum/sortlab/internal/sorting"
)

var badgeFill = map[compare.Badge]string{
	compare.Excellent: "#27ae60",
	compare.Good:      "#3498db",
	compare.Average:   "#f39c12",
	compare.Poor:      "#e74c3c",
}

// ChartSVG draws one horizontal bar per result, scaled to the slowest time
// and coloured by badge.
func ChartSVG(results []compare.Result, width, height int) string {
	if len(results) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	const labelW, pad = 140.0, 10.0
	slowest := 0.0
	for _, r := range results {
		slowest = max(slowest, r.Millis)
	}
	if slowest == 0 {
		slowest = 1
	}

	rowH := (float64(height) - 2*pad) / float64(len(results))
	barMax := float64(width) - labelW - 2*pad - 80

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="12">
`, width, height, width, height))

	for i, r := range results {
		y := pad + float64(i)*rowH
		w := max(r.Millis/slowest*barMax, 1)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ecf0f1">%d. %s</text>
`, pad, y+rowH/2+4, r.Rank, html.EscapeString(r.Name)))
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, pad+labelW, y+rowH*0.15, w, rowH*0.7, badgeFill[r.Badge]))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#95a5a6">%.3fms</text>
`, pad+labelW+w+6, y+rowH/2+4, r.Millis))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CountsSVG plots cumulative comparisons and swaps against the step number.
func CountsSVG(steps []sorting.Step, width, height int) string {
	if len(steps) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	top := 1
	for _, s := range steps {
		top = max(top, s.Counts.Comparisons, s.Counts.Swaps)
	}
	last := steps[len(steps)-1].Seq
	if last == 0 {
		last = 1
	}

	path := func(value func(sorting.Counts) int) string {
		var p strings.Builder
		for i, s := range steps {
			x := float64(s.Seq) / float64(last) * float64(width)
			y := float64(height) - float64(value(s.Counts))/float64(top)*float64(height)
			if i == 0 {
				p.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				p.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		return p.String()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#3498db" stroke-width="1.5" d="%s"/>
`, path(func(c sorting.Counts) int { return c.Comparisons })))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#e67e22" stroke-width="1.5" d="%s"/>
`, path(func(c sorting.Counts) int { return c.Swaps })))
	sb.WriteString("</svg>")
	return sb.String()
}
