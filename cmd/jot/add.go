package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/shell"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a note",
	Long:  `Add appends a note stamped with the current local time. Arguments are joined with spaces.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openNotebook(false)
		if err != nil {
			return err
		}

		if err := shell.AddNote(cmd.Context(), service, cmd.OutOrStdout(), strings.Join(args, " ")); err != nil {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
