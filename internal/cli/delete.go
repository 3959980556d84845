package cli

import (
	"fmt"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/usecase"
	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var workspace string
	var noSave bool

	c := &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a recipe and save the recipe file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			if err := ws.store.Load(); err != nil {
				return err
			}

			uc := usecase.NewDeleteRecipe(ws.store)
			removed, err := uc.Execute(idx, !noSave)
			if err != nil {
				return err
			}

			if noSave {
				fmt.Printf("Removed %q (not saved; the file is untouched)\n", removed.Name)
			} else {
				fmt.Printf("Removed %q\n", removed.Name)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "remove from the loaded collection without writing the file")
	return c
}
