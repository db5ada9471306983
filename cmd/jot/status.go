package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

var (
	statusJSON bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where notes are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openNotebook(true)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if statusJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(service.State()); err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
			return nil
		}

		state, _ := service.State().(core.ServiceState)
		repo, ok := state.RepositoryState.(fs.RepositoryState)
		if !ok {
			fmt.Fprintf(out, "storage: %s\n", state.RepositoryType)
			return nil
		}

		fmt.Fprintf(out, "file:   %s\n", repo.Path)
		if repo.Exists {
			fmt.Fprintf(out, "size:   %d bytes\n", repo.SizeBytes)
		} else {
			fmt.Fprintln(out, "size:   (not created yet)")
		}
		fmt.Fprintf(out, "log:    %s\n", cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
