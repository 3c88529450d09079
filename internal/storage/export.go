package storage

import (
	"encoding/json"
	"io"

	"github.com/samuelgirmametaferia/Oil-dropv2/internal/sim"
)

// ExportData is the flat JSON shape written by the export commands.
type ExportData struct {
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	Duration   float64            `json:"duration"`
	FrameRate  float64            `json:"frame_rate"`
	Samples    int                `json:"samples"`
	Times      []float64          `json:"times"`
	Positions  []float64          `json:"positions"`
	Velocities []float64          `json:"velocities"`
	Fields     []float64          `json:"fields"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []sim.Sample) error {
	data := ExportData{
		ID:         meta.ID,
		Label:      meta.Label,
		Duration:   meta.Duration,
		FrameRate:  meta.FrameRate,
		Samples:    len(samples),
		Times:      make([]float64, len(samples)),
		Positions:  make([]float64, len(samples)),
		Velocities: make([]float64, len(samples)),
		Fields:     make([]float64, len(samples)),
		Metrics:    meta.Metrics,
	}
	for i, s := range samples {
		data.Times[i] = s.Time
		data.Positions[i] = s.Position
		data.Velocities[i] = s.Velocity
		data.Fields[i] = s.Field
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
