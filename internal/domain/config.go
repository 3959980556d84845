package domain

// Config represents the minimal configuration loaded from recept.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Backups  BackupsConfig
}

type DefaultsConfig struct {
	// File is the recipe file name, relative to the workspace root.
	File string
}

type PathsConfig struct {
	BackupsDir string
}

type BackupsConfig struct {
	Enabled bool
}

// DefaultConfig provides sane defaults if recept.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			File: "recept.txt",
		},
		Paths: PathsConfig{
			BackupsDir: "backups",
		},
		Backups: BackupsConfig{Enabled: true},
	}
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
