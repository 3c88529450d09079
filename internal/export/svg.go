// Package export renders recorded runs as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/sim"
)

// TrajectorySVG draws height-above-plate against time as a polyline,
// with the two plates as horizontal rules. gap is the plate separation
// in metres; width and height are the viewport in pixels.
func TrajectorySVG(samples []sim.Sample, gap float64, width, height int) string {
	if len(samples) < 2 || gap <= 0 {
		return ""
	}

	tMin := samples[0].Time
	tMax := samples[len(samples)-1].Time
	tRange := tMax - tMin
	if tRange == 0 {
		tRange = 1
	}

	pad := 20.0
	w, h := float64(width), float64(height)
	plotW, plotH := w-2*pad, h-2*pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Plates: upper at the top of the plot area, lower at the bottom.
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#888888" stroke-width="3"/>
`, pad, pad, w-pad, pad))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#888888" stroke-width="3"/>
`, pad, h-pad, w-pad, h-pad))

	sb.WriteString(`<polyline fill="none" stroke="#00ff88" stroke-width="1.5" points="`)
	for i, s := range samples {
		x := pad + (s.Time-tMin)/tRange*plotW
		frac := s.Position / gap
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		y := h - pad - frac*plotH
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}
	sb.WriteString("\"/>\n</svg>")

	return sb.String()
}
