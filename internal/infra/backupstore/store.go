// Package backupstore keeps timestamped copies of the recipe file, taken
// right before each save overwrites it.
package backupstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

const defaultBackupsDir = "backups"

type Store struct {
	rootDir string
	dirName string
	now     func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(root string, cfg domain.Config, opts ...Option) *Store {
	dir := cfg.Paths.BackupsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultBackupsDir
	}

	s := &Store{
		rootDir: root,
		dirName: dir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.BackupStore = (*Store)(nil)

// SaveBackup copies the current content of sourcePath into the backups
// directory. A missing source is not an error: there is nothing to back up
// before the first save.
func (s *Store) SaveBackup(sourcePath string) (string, error) {
	b, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", &domain.OpError{
			Op:   "backupstore.read",
			Kind: domain.KindIO,
			Path: sourcePath,
			Err:  err,
		}
	}

	dir := filepath.Join(s.rootDir, s.dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "backupstore.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	ts := s.now().UTC()
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(filepath.Base(sourcePath), ext)
	slug := slugify(base)
	if slug == "" {
		slug = "recept"
	}

	filename := fmt.Sprintf("%s_%s%s", ts.Format("20060102T150405Z"), slug, ext)
	id := strings.TrimSuffix(filename, ext)
	path := filepath.Join(dir, filename)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "backupstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "backupstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	return id, nil
}

func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
