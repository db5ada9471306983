package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/shell"
)

var (
	verbose    bool
	fileFlag   string
	configFlag string

	cfg *jot.Config
)

// errReported marks a failure the user has already been told about.
var errReported = errors.New("failure already reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Take timestamped notes in a plain text file",
	Long: `jot appends timestamped notes to a local text file and lists them back.
Run it without a command for the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := jot.LoadConfig(jot.ConfigSources{
			FileFlag:   fileFlag,
			ConfigPath: configFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		slog.Debug("configuration loaded", "file", cfg.File, "level", level.String())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openNotebook(false)
		if err != nil {
			return err
		}

		sh := shell.New(service, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithLogger(slog.Default()))
		return sh.Run(cmd.Context())
	},
}

// openNotebook wires the service for the configured notebook file.
func openNotebook(readOnly bool) (*core.Service, error) {
	service, err := jot.New(cfg.File,
		jot.WithLogger(slog.Default()),
		jot.WithReadOnly(readOnly),
		jot.WithPerm(cfg.Perm),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}
	return service, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Notebook file (default $JOT_FILE, config file, or "+jot.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $JOT_CONFIG or <user config dir>/jot/config.yaml)")
}
