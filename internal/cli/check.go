package cli

import (
	"fmt"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/usecase"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a recipe file without loading it into the book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			path := resolveRecipePath(ws, arg)

			if !fileExists(path) {
				return fmt.Errorf("recipe file %q does not exist", path)
			}

			uc := usecase.NewCheckFile(ws.loader)
			recipes, err := uc.Execute(path)
			if err != nil {
				return err
			}

			fmt.Printf("OK — %d recept\n", len(recipes))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
