// Package cli provides the command-line interface for wic.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avalluri/wic/internal/config"
	"github.com/avalluri/wic/internal/tui"
)

// AddConfigCommand adds the config command and its subcommands to the root command.
func AddConfigCommand(root *cobra.Command, global *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wic configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigShowCmd(global))

	root.AddCommand(cmd)
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after merging built-in defaults, the
global config (~/.wic/config.yaml), the project config (.wic/config.yaml)
and WIC_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, global)
		},
	}
}

// runConfigShow loads and prints the merged configuration.
func runConfigShow(cmd *cobra.Command, global *GlobalFlags) error {
	out := tui.NewOutput(cmd.OutOrStdout(), global.Format)

	cfg, err := config.Load()
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}

	if global.Format == OutputJSON {
		return out.JSON(cfg)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
