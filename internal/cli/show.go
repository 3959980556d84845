package cli

import (
	"fmt"
	"strings"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "show <number>",
		Short: "Show one recipe in full",
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

			r, err := ws.store.GetAt(idx)
			if err != nil {
				return err
			}

			fmt.Print(formatRecipe(r))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

func formatRecipe(r domain.Recipe) string {
	var b strings.Builder

	b.WriteString(r.Name)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len([]rune(r.Name))))
	b.WriteString("\n\nIngredienser:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  - %s %s %s\n", ing.Amount, ing.Measure, ing.Name)
	}

	b.WriteString("\nInstruktioner:\n")
	for i, ins := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ins)
	}

	return b.String()
}
