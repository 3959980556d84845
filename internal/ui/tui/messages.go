package tui

import (
	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type bookOpenedMsg struct {
	root    string
	store   ports.RecipeStore
	recipes []domain.Recipe
	err     error
}

type recipesReloadedMsg struct {
	recipes []domain.Recipe
	err     error
}

type recipeDeletedMsg struct {
	name string
	err  error
}

type bookSavedMsg struct {
	err error
}

// storeChangedMsg arrives whenever the store fires its change notification.
type storeChangedMsg struct{}
