package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	runtimeTcell     = "tcell"
	runtimeBubbletea = "bubbletea"
)

func newDemoCmd() *cobra.Command {
	var runtime string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive tooltip and cursor-follow demo",
		Long: `Run an interactive demo: move through a scrolling list with the arrow keys
and watch the tooltip flip and shift as it nears the screen edges. A second
panel follows the mouse pointer. Scroll the list with the mouse wheel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)
			logger.Debug("starting demo", "runtime", runtime)

			switch runtime {
			case runtimeTcell:
				return runTcellDemo(ctx, cfg, logger)
			case runtimeBubbletea:
				return runTeaDemo(ctx, cfg, logger)
			}
			return fmt.Errorf("unknown runtime %q, want %s or %s", runtime, runtimeTcell, runtimeBubbletea)
		},
	}
	cmd.Flags().StringVar(&runtime, "runtime", runtimeTcell, "terminal runtime: tcell or bubbletea")
	return cmd
}
