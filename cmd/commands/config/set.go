package config

import (
	"errors"
	"fmt"
	"strings"

	"caresteward/showcase/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value clears the key\n" +
			"so the built-in default applies again.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  showcase config set tick-interval 1s\n" +
			"  showcase config set live-on-start false\n" +
			"  showcase config set log-level \"\"",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	normalized, err := config.Apply(cfg, args[0], args[1])
	if err != nil {
		if errors.Is(err, config.ErrUnknownKey) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
			fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	name := config.Lookup(args[0]).Name
	if normalized == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", name)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", name, normalized)
}
