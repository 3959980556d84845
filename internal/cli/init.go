package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/fsworkspace"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/usecase"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a recipe workspace (recept.yaml + sample recipe file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready: %s\n", abs)
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing workspace files")
	return c
}
