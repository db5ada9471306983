package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/shell"
)

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"list", "ls"},
	Short:   "Print all notes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openNotebook(true)
		if err != nil {
			return err
		}

		if err := shell.ViewNotes(cmd.Context(), service, cmd.OutOrStdout()); err != nil {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
