package domain

import "math"

// Table holds one projected trace per row, columns aligned by step index.
type Table [][]float64

// Shape returns (rows, columns). Rows are assumed to share one length.
func (t Table) Shape() (int, int) {
	if len(t) == 0 {
		return 0, 0
	}
	return len(t), len(t[0])
}

// Column returns the values of every row at the given step.
func (t Table) Column(step int) []float64 {
	col := make([]float64, 0, len(t))
	for _, row := range t {
		if step < len(row) {
			col = append(col, row[step])
		}
	}
	return col
}

// StepSummary aggregates one column of a Table.
type StepSummary struct {
	Step int     `json:"step"`
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summarize computes the per-step mean, min and max across all rows.
func (t Table) Summarize() []StepSummary {
	_, cols := t.Shape()
	out := make([]StepSummary, cols)
	for step := range cols {
		s := StepSummary{Step: step, Min: math.Inf(1), Max: math.Inf(-1)}
		var sum float64
		col := t.Column(step)
		for _, v := range col {
			sum += v
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		if len(col) > 0 {
			s.Mean = sum / float64(len(col))
		}
		out[step] = s
	}
	return out
}
