package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"kmeanselbow/internal/sweep"
)

// ElbowGraph returns a terminal plot of inertia against k. Curves with
// non-finite values are not drawn.
func ElbowGraph(sr *sweep.Result, height int) string {
	ys := sr.Inertias()
	if len(ys) == 0 {
		return ""
	}
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return ""
		}
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("inertia for k=1..%d", sr.MaxK())),
	)
}

// WriteTable writes one row per k with inertia, iteration count and cluster
// sizes. The elbow row is starred.
func WriteTable(w io.Writer, sr *sweep.Result) {
	elbow, _ := sr.Elbow()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"k", "inertia", "iterations", "converged", "sizes", "elbow"})
	for _, k := range sr.Ks() {
		run, _ := sr.At(k)
		mark := ""
		if k == elbow {
			mark = "*"
		}
		table.Append([]string{
			strconv.Itoa(k),
			strconv.FormatFloat(run.Inertia, 'f', 4, 64),
			strconv.Itoa(run.Iterations),
			strconv.FormatBool(run.Converged),
			joinInts(run.Sizes()),
			mark,
		})
	}
	table.Render()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
