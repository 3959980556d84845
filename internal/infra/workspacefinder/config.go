package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads recept.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "recept.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Recept.Defaults.File != "" {
		cfg.Defaults.File = y.Recept.Defaults.File
	}
	if y.Recept.Paths.BackupsDir != "" {
		cfg.Paths.BackupsDir = y.Recept.Paths.BackupsDir
	}
	if y.Recept.Backups.Enabled != nil {
		cfg.Backups.Enabled = *y.Recept.Backups.Enabled
	}

	return cfg, nil
}

type yamlConfig struct {
	Recept struct {
		Defaults struct {
			File string `yaml:"file"`
		} `yaml:"defaults"`

		Paths struct {
			BackupsDir string `yaml:"backups_dir"`
		} `yaml:"paths"`

		Backups struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"backups"`
	} `yaml:"recept"`
}
