// Package cli provides the command-line interface for wic.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/avalluri/wic/internal/canned"
	"github.com/avalluri/wic/internal/config"
	"github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/tui"
)

// AddListCommand adds the list command and its subcommands to the root command.
func AddListCommand(root *cobra.Command, global *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Wrapf(errors.ErrUnknownListKind, "%q", args[0])
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListImagesCmd(global))

	root.AddCommand(cmd)
}

// newListImagesCmd creates the 'list images' subcommand.
func newListImagesCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List canned images that can be created",
		Long: `List the canned image descriptions found in the configured search
directories. Any listed name can be passed to 'wic create'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListImages(cmd, global)
		},
	}
}

// runListImages scans the canned descriptor directories and renders the result.
func runListImages(cmd *cobra.Command, global *GlobalFlags) error {
	tui.CheckNoColor()
	out := tui.NewOutput(cmd.OutOrStdout(), global.Format)

	cfg, err := config.Load()
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}

	images, err := canned.Scan(cmd.Context(), cfg.Canned.Dirs)
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}

	if global.Format == OutputJSON {
		return out.JSON(images)
	}

	if len(images) == 0 {
		out.Info("no canned images found")
		return nil
	}

	table := tui.NewTable(cmd.OutOrStdout(), []tui.TableColumn{
		{Name: "IMAGE", Width: 20},
		{Name: "DESCRIPTION", Width: 40},
	})
	for _, img := range images {
		table.AddRow(img.Name, img.ShortDescription)
	}
	return table.Render()
}
