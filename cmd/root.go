package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"caresteward/showcase/cmd/commands/chart"
	cfgcmd "caresteward/showcase/cmd/commands/config"
	"caresteward/showcase/cmd/commands/contact"
	"caresteward/showcase/cmd/commands/metrics"
	"caresteward/showcase/internal/config"
	contactflow "caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/logging"
	"caresteward/showcase/internal/monitor"
	"caresteward/showcase/internal/tui"
	"caresteward/showcase/internal/util"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stdoutIsTerminal decides between the interactive showcase and the static
// render. Tests replace it.
var stdoutIsTerminal = func() bool { return util.IsTerminal(os.Stdout) }

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "showcase",
		Short: "Care Steward professional UI component showcase",
		Long: `showcase presents a set of interactive terminal UI components: a
problem-solution graphic, a contact form with simulated submission, a
switchable bar chart and a live performance-metrics panel.

Run without arguments in a terminal to open the full-window showcase.
When stdout is not a terminal, every section is printed once instead.

Quick start:
  showcase                          # Open the interactive showcase
  showcase contact                  # Fill in and submit the contact form
  showcase metrics --ticks 5        # Stream five metric updates
  showcase chart users              # Print the active users chart`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runShowcase,
	}

	cmd.PersistentFlags().String("log-level", "", "Log verbosity: debug, info, warn, error (overrides config and "+logging.LogLevelEnvVar+")")
	cmd.Flags().Bool("paused", false, "Start the performance monitor paused")
	cmd.Flags().Int64("seed", 0, "Seed for the simulated metrics (0 picks a random seed)")

	cmd.AddCommand(contact.NewCommand())
	cmd.AddCommand(metrics.NewCommand())
	cmd.AddCommand(chart.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// setup loads .env and initializes logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = cfg.LogLevel
	}
	path := cfg.LogFile
	if env := os.Getenv(logging.LogFileEnvVar); env != "" {
		path = env
	}
	if err := logging.Initialize(level, path); err != nil {
		return err
	}

	logging.L().Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
	return nil
}

func runShowcase(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatic(tui.DefaultStaticWidth))
		return nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	paused, _ := cmd.Flags().GetBool("paused")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := logging.L()
	log.Info("starting showcase",
		zap.Duration("submit_delay", settings.SubmitDelay),
		zap.Duration("tick_interval", settings.TickInterval),
		zap.Bool("paused", paused || !settings.LiveOnStart),
		zap.Int64("seed", seed),
	)

	return tui.RunShowcase(tui.ShowcaseOptions{
		Flow: contactflow.Options{
			SubmitDelay: settings.SubmitDelay,
			ResetDelay:  settings.ResetDelay,
		},
		Feed: monitor.Options{
			Rand:         rand.New(rand.NewSource(seed)),
			TickInterval: settings.TickInterval,
			Paused:       paused || !settings.LiveOnStart,
		},
		Logger: log,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	defer logging.Sync()

	var root = rootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		logging.Sync()
		os.Exit(1)
	}
}
