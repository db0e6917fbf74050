package domain

import "math"

// displayPrecision is the number of decimals kept in snapshots. Rounding
// applies to the recorded copies only, never to the live tableau.
const displayPrecision = 6

// Snapshot is an immutable display copy of one tableau state.
type Snapshot struct {
	Title     string
	Headers   []string
	Rows      []SnapshotRow
	Objective SnapshotRow
}

// SnapshotRow pairs a row label (the basic variable, or "Z" for the
// objective row) with its rounded values including the RHS.
type SnapshotRow struct {
	Label  string
	Values []float64
}

// snapshot copies the current tableau into its display shape.
func (t *tableau) snapshot(title string) Snapshot {
	m := t.numConstraints()

	headers := make([]string, 0, len(t.varNames)+2)
	headers = append(headers, "Base")
	headers = append(headers, t.varNames...)
	headers = append(headers, "LD (RHS)")

	rows := make([]SnapshotRow, m)
	for i := 0; i < m; i++ {
		rows[i] = SnapshotRow{Label: t.basis[i], Values: roundSlice(t.rows[i])}
	}

	return Snapshot{
		Title:     title,
		Headers:   headers,
		Rows:      rows,
		Objective: SnapshotRow{Label: "Z", Values: roundSlice(t.rows[m])},
	}
}

func roundSlice(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = roundTo(v, displayPrecision)
	}
	return out
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
