package tui

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderRecipe(r domain.Recipe) string {
	var b strings.Builder

	b.WriteString(clampString(r.Name, 60))
	b.WriteString("\n\nIngredienser:\n")
	if len(r.Ingredients) == 0 {
		b.WriteString("  (inga)\n")
	}
	for _, ing := range r.Ingredients {
		b.WriteString("  - ")
		b.WriteString(strings.TrimSpace(fmt.Sprintf("%s %s %s", ing.Amount, ing.Measure, ing.Name)))
		b.WriteByte('\n')
	}

	b.WriteString("\nInstruktioner:\n")
	if len(r.Instructions) == 0 {
		b.WriteString("  (inga)\n")
	}
	for i, ins := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ins)
	}

	return b.String()
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
