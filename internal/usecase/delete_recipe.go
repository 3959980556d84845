package usecase

import (
	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type DeleteRecipe struct {
	store ports.RecipeStore
}

func NewDeleteRecipe(store ports.RecipeStore) *DeleteRecipe {
	return &DeleteRecipe{store: store}
}

// Execute removes the recipe at index from the live collection and, when save
// is set, flushes the collection back to the recipe file. The removed recipe
// is returned so callers can report what went away.
func (uc *DeleteRecipe) Execute(index int, save bool) (domain.Recipe, error) {
	removed, err := uc.store.GetAt(index)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := uc.store.DeleteAt(index); err != nil {
		return domain.Recipe{}, err
	}

	if save {
		if err := uc.store.Save(); err != nil {
			return removed, err
		}
	}
	return removed, nil
}
