package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"caresteward/showcase/internal/config"
	"caresteward/showcase/internal/logging"
	"caresteward/showcase/internal/monitor"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCommand returns the "metrics" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Stream the simulated performance metrics",
		Long: `Run the live metrics feed and print each snapshot as it changes.

The feed starts from the initial values and perturbs every metric once
per tick. The command stops after --ticks updates or on interrupt.

Examples:
  # Five updates as tables
  showcase metrics --ticks 5

  # Reproducible JSON stream for scripting
  showcase metrics --ticks 10 --seed 42 --interval 100ms -o json`,
		Args:         cobra.NoArgs,
		RunE:         runMetrics,
		SilenceUsage: true,
	}

	cmd.Flags().Int("ticks", 5, "Number of updates to print before exiting")
	cmd.Flags().Duration("interval", 0, "Tick interval (defaults to the tick-interval setting)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks a random seed)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

// frame is one printed snapshot.
type frame struct {
	Tick    uint64           `json:"tick"`
	Metrics monitor.Snapshot `json:"metrics"`
}

func runMetrics(cmd *cobra.Command, args []string) error {
	ticks, _ := cmd.Flags().GetInt("ticks")
	if ticks < 1 {
		return fmt.Errorf("--ticks must be at least 1, got %d", ticks)
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unknown output format %q (valid: table, json)", output)
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		interval = settings.TickInterval
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	feed := monitor.NewFeed(monitor.Options{
		Rand:         rand.New(rand.NewSource(seed)),
		TickInterval: interval,
		Logger:       logging.L(),
		Paused:       true,
		Step:         true,
	})
	defer feed.Close()

	printer := tablePrinter
	if output == "json" {
		printer = jsonPrinter
	}

	err := stream(cmd.Context(), feed, uint64(ticks), func(f frame) error {
		return printer(cmd.OutOrStdout(), f)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// stream prints the initial snapshot, then prints every tick until want
// ticks have been printed. The feed must be created with Step set: it
// holds after each tick and is resumed only once the frame is out, so a
// slow writer never misses a snapshot. One goroutine consumes change
// notifications; the other closes the feed when the context ends so the
// consumer never blocks past cancellation.
func stream(ctx context.Context, feed *monitor.Feed, want uint64, emit func(frame) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := feed.Subscribe()
	n, snap := feed.Current()
	if err := emit(frame{Tick: n, Metrics: snap}); err != nil {
		return err
	}
	feed.SetLive(true)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		seen := n
		for printed := uint64(0); printed < want; {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case _, ok := <-sub:
				if !ok {
					return nil
				}
			}
			n, snap := feed.Current()
			if n == seen {
				continue
			}
			seen = n
			if err := emit(frame{Tick: n, Metrics: snap}); err != nil {
				return err
			}
			printed++
			if printed < want {
				feed.SetLive(true)
			}
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		feed.Close()
		return nil
	})

	return g.Wait()
}

func tablePrinter(w io.Writer, f frame) error {
	if f.Tick == 0 {
		fmt.Fprintln(w, "Initial snapshot")
	} else {
		fmt.Fprintf(w, "\nTick %d\n", f.Tick)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE\tSTATUS\tTREND\tLOAD")
	fmt.Fprintln(tw, "------\t-----\t------\t-----\t----")
	for _, m := range f.Metrics {
		value := monitor.FormatValue(m)
		if m.Unit != "" {
			value += m.Unit
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\t%.0f%%\n",
			m.Name, value, m.Status, m.Trend.Arrow(), m.Trend, monitor.Progress(m))
	}
	return tw.Flush()
}

func jsonPrinter(w io.Writer, f frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
