package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "list",
		Short: "List recipes in the workspace's recipe file",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			if err := ws.store.Load(); err != nil {
				return err
			}

			all := ws.store.GetAll()
			if len(all) == 0 {
				fmt.Println("(no recipes found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for i, r := range all {
				fmt.Printf("%d. %s\n", i+1, summarize(r))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
