package tui

import (
	"log/slog"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
