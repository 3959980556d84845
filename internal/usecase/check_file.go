package usecase

import (
	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type CheckFile struct {
	loader ports.RecipeFileLoader
}

func NewCheckFile(loader ports.RecipeFileLoader) *CheckFile {
	return &CheckFile{loader: loader}
}

// Execute parses a recipe file without touching any store and returns the
// recipes it contains. A malformed file surfaces as a KindFormat error.
func (uc *CheckFile) Execute(path string) ([]domain.Recipe, error) {
	return uc.loader.LoadFile(path)
}
