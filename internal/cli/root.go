package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/buildinfo"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/fsworkspace"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/logger"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/workspacefinder"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "recept",
		Short:        "Recept — a TUI recipe book stored as a plain-text recipe file",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .recept/logs/recept.log")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(deleteCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(initCmd())
	return cmd
}
