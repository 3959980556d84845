package ports

import "github.com/dv222bk/3-1-recept-pa-fil/internal/domain"

// RecipeFileLoader reads a recipe file from disk and parses it.
type RecipeFileLoader interface {
	LoadFile(path string) ([]domain.Recipe, error)
}
