package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/backupstore"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/recipestore"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/workspacefinder"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdOpenBook builds the store for the workspace's recipe file and loads it.
func cmdOpenBook(root string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if log == nil {
			log = slog.Default()
		}

		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			log.Error("book.load_config.failed", "err", err)
			return bookOpenedMsg{root: root, err: err}
		}

		opts := []recipestore.Option{recipestore.WithLogger(log)}
		if cfg.Backups.Enabled {
			opts = append(opts, recipestore.WithBackups(backupstore.New(root, cfg)))
		}

		store, err := recipestore.New(filepath.Join(root, cfg.Defaults.File), opts...)
		if err != nil {
			log.Error("book.open.failed", "err", err)
			return bookOpenedMsg{root: root, err: err}
		}

		if err := store.Load(); err != nil {
			log.Error("book.load.failed", "err", err)
			return bookOpenedMsg{root: root, err: err}
		}

		log.Info("book.opened", "root", root, "recipes", store.Count())
		return bookOpenedMsg{root: root, store: store, recipes: store.GetAll()}
	}
}

func cmdReloadFromDisk(store ports.RecipeStore) tea.Cmd {
	return func() tea.Msg {
		if err := store.Load(); err != nil {
			return recipesReloadedMsg{err: err}
		}
		return recipesReloadedMsg{recipes: store.GetAll()}
	}
}

func cmdSnapshotRecipes(store ports.RecipeStore) tea.Cmd {
	return func() tea.Msg {
		return recipesReloadedMsg{recipes: store.GetAll()}
	}
}

func cmdDeleteRecipe(store ports.RecipeStore, index int) tea.Cmd {
	return func() tea.Msg {
		r, err := store.GetAt(index)
		if err != nil {
			return recipeDeletedMsg{err: err}
		}
		if err := store.DeleteAt(index); err != nil {
			return recipeDeletedMsg{err: err}
		}
		return recipeDeletedMsg{name: r.Name}
	}
}

func cmdSaveBook(store ports.RecipeStore, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		err := store.Save()
		if err != nil && log != nil {
			log.Error("book.save.failed", "err", err)
		}
		return bookSavedMsg{err: err}
	}
}

// listenChanges waits for the next store change notification.
func listenChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}
