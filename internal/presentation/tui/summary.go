package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// DefaultSummaryRows caps how many steps the summary table shows.
const DefaultSummaryRows = 11

// Summary renders a simulation as Markdown: a header and per-step statistics
// at up to maxRows evenly spaced steps (always including the first and last).
func Summary(sim *domain.Simulation, maxRows int) string {
	var b strings.Builder
	rows, cols := sim.Table.Shape()

	fmt.Fprintf(&b, "# Simulation `%s`\n\n", sim.ID)
	fmt.Fprintf(&b, "- **Process**: %s\n", sim.Request.Process)
	fmt.Fprintf(&b, "- **Start price**: %d\n", sim.Request.StartPrice)
	fmt.Fprintf(&b, "- **Traces**: %d x %d steps\n", rows, cols)
	fmt.Fprintf(&b, "- **Seed**: %d\n", sim.Seed)
	if len(sim.Request.Params) > 0 {
		fmt.Fprintf(&b, "- **Params**: %v\n", sim.Request.Params)
	}
	b.WriteString("\n")

	if cols == 0 {
		return b.String()
	}

	b.WriteString("| Step | Mean | Min | Max |\n")
	b.WriteString("|-----:|-----:|----:|----:|\n")
	summary := sim.Table.Summarize()
	for _, step := range sampleSteps(cols, maxRows) {
		s := summary[step]
		fmt.Fprintf(&b, "| %d | %.2f | %.0f | %.0f |\n", s.Step, s.Mean, s.Min, s.Max)
	}
	return b.String()
}

// sampleSteps picks up to n evenly spaced indices in [0, cols).
// n is raised to 2 so the first and last steps are always shown.
func sampleSteps(cols, n int) []int {
	n = max(n, 2)
	if cols <= n {
		out := make([]int, cols)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, n)
	last := -1
	for i := range n {
		step := i * (cols - 1) / (n - 1)
		if step != last {
			out = append(out, step)
			last = step
		}
	}
	return out
}
