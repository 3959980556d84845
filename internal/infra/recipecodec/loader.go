package recipecodec

import (
	"os"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

// Loader reads recipe files from the filesystem.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.RecipeFileLoader = (*Loader)(nil)

func (l *Loader) LoadFile(path string) ([]domain.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recipecodec.load",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return Parse(string(b))
}
