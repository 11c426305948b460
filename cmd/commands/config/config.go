package config

import (
	"caresteward/showcase/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage showcase configuration",
		Long: "View and modify persistent showcase settings.\n\n" +
			"Configuration is stored at ~/.config/showcase/config.yaml.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
