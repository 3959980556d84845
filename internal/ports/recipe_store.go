package ports

import "github.com/dv222bk/3-1-recept-pa-fil/internal/domain"

// RecipeStore owns the canonical recipe collection and its backing file.
//
// GetAll and GetAt return deep copies; the stored collection can only be
// changed through Delete/DeleteAt/Load. Observers registered via Subscribe
// are called after every successful Load, Save, and effective delete.
type RecipeStore interface {
	GetAll() []domain.Recipe
	GetAt(index int) (domain.Recipe, error)

	// Delete removes the first recipe structurally equal to rec and reports
	// whether anything was removed. A nil rec is a no-op.
	Delete(rec *domain.Recipe) bool
	DeleteAt(index int) error

	Load() error
	Save() error

	Count() int
	Modified() bool

	Subscribe(fn func()) int
	Unsubscribe(id int)
}
