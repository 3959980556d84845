package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/backupstore"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/recipecodec"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/recipestore"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/workspacefinder"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store  ports.RecipeStore
	loader ports.RecipeFileLoader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	opts := []recipestore.Option{}
	if cfg.Backups.Enabled {
		opts = append(opts, recipestore.WithBackups(backupstore.New(root, cfg)))
	}

	store, err := recipestore.New(filepath.Join(root, cfg.Defaults.File), opts...)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		store:  store,
		loader: recipecodec.NewLoader(),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `recept init`): %w", wd, err)
	}
	return root, nil
}

// resolveRecipePath turns the check command's argument into a file path:
// empty means the workspace's configured recipe file, a path-looking value is
// resolved against the workspace root.
func resolveRecipePath(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" {
		return filepath.Join(ws.root, ws.cfg.Defaults.File)
	}
	if !filepath.IsAbs(in) {
		in = filepath.Join(ws.root, in)
	}
	return filepath.Clean(in)
}

// parseIndex converts a 1-based command-line position into a 0-based
// collection index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid recipe number %q", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("recipe numbers start at 1, got %d", n)
	}
	return n - 1, nil
}

func summarize(r domain.Recipe) string {
	return fmt.Sprintf("%s  (%d ingredienser, %d steg)", r.Name, len(r.Ingredients), len(r.Instructions))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
