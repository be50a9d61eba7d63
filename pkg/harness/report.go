package harness

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteReport renders one row per strategy result.
func WriteReport(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Strategy", "Tokens", "Elapsed"})
	for _, res := range results {
		table.Append([]string{
			res.Strategy.String(),
			fmt.Sprintf("%d", res.Tokens),
			res.Elapsed.String(),
		})
	}
	table.Render()
}
