package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow new notes as they are added",
	Long:  `Watch prints every note appended to the notebook from now on, until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		service, err := openNotebook(true)
		if err != nil {
			return err
		}

		events, err := service.Watch(ctx)
		if err != nil {
			return fmt.Errorf("failed to watch notebook: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", cfg.File)

		out := cmd.OutOrStdout()
		for e := range events {
			switch e.Type {
			case core.EventAppend:
				fmt.Fprintln(out, strings.TrimSpace(e.Note.String()))
			case core.EventReset:
				fmt.Fprintln(cmd.ErrOrStderr(), "Notebook was reset.")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
