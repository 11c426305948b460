package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"caresteward/showcase/internal/dataviz"
	"caresteward/showcase/internal/tui/components"
	"caresteward/showcase/internal/tui/styles"
	"caresteward/showcase/internal/util"

	"github.com/spf13/cobra"
)

const (
	defaultWidth = 60
	chartHeight  = 12
)

// NewCommand returns the "chart" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [revenue|users|growth]",
		Short: "Print a dataset as a bar chart with its summary",
		Long: `Print one of the demo datasets as a bar chart, followed by the current
value, the six-month average and the total growth.

Examples:
  showcase chart                  # revenue
  showcase chart users
  showcase chart growth -o json`,
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    []string{string(dataviz.Revenue), string(dataviz.Users), string(dataviz.Growth)},
		RunE:         runChart,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "chart", "Output format: chart or json")
	cmd.Flags().Int("width", 0, "Chart width in columns (defaults to the terminal width)")

	return cmd
}

// chartJSON is the machine-readable form of a dataset.
type chartJSON struct {
	Dataset string          `json:"dataset"`
	Label   string          `json:"label"`
	Points  []dataviz.Point `json:"points"`
	Summary dataviz.Summary `json:"summary"`
}

func runChart(cmd *cobra.Command, args []string) error {
	kind := dataviz.Revenue
	if len(args) == 1 {
		var err error
		kind, err = dataviz.ParseKind(args[0])
		if err != nil {
			return err
		}
	}

	points := dataviz.Points(kind)
	summary := dataviz.Summarize(kind)

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(chartJSON{
			Dataset: string(kind),
			Label:   kind.Label(),
			Points:  points,
			Summary: summary,
		})
	case "chart":
	default:
		return fmt.Errorf("unknown output format %q (valid: chart, json)", output)
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = min(util.TerminalWidth(os.Stdout, defaultWidth), 100)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Title.Render(kind.Label()))
	fmt.Fprintln(out, components.BarChart(points, width, chartHeight, styles.BrandLight))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Current:\t%s\n", dataviz.FormatNumber(summary.Current))
	fmt.Fprintf(w, "  Average:\t%s\n", dataviz.FormatNumber(summary.Average))
	fmt.Fprintf(w, "  Total Growth:\t%s\n", dataviz.FormatGrowth(summary.GrowthPct))
	return w.Flush()
}
