package main

import (
	"fmt"
	"io"
	rtdebug "runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-floating/internal/debug"
)

var (
	version = "dev" // set via -ldflags
	commit  string
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
		debugLog   string
	)

	root := &cobra.Command{
		Use:           "floatctl",
		Short:         "Compute and preview floating element positions",
		Long:          `floatctl positions tooltips, dropdowns and popovers against an anchor box, flipping and shifting them to stay inside the viewport.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			if debugLog != "" {
				if err := debug.Init(debugLog); err != nil {
					return fmt.Errorf("--debug-log: %w", err)
				}
				logger.Debug("engine debug log enabled", "path", debugLog)
			}

			explicit := cmd.Flags().Changed("config")
			cfg, err := LoadConfig(configPath, explicit)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "path", configPath, "placement", cfg.Placement, "offset", cfg.Offset, "padding", cfg.Padding)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if debugLog != "" {
				return debug.Close()
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath, "TOML file with default engine options")
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "write engine debug output to this file (also "+debug.EnvVar+")")

	root.AddCommand(newPlaceCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c := version, commit
			if info, ok := rtdebug.ReadBuildInfo(); ok {
				if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
					v = info.Main.Version
				}
				for _, s := range info.Settings {
					if s.Key == "vcs.revision" && c == "" {
						c = s.Value
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "floatctl %s\n", v)
			if c != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
			}
			return nil
		},
	}
}
