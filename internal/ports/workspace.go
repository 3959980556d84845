package ports

import "github.com/dv222bk/3-1-recept-pa-fil/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
