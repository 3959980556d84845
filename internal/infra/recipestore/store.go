// Package recipestore owns the canonical in-memory recipe collection and
// persists it to a recipe file in the recipecodec text format.
package recipestore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/infra/recipecodec"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

// Store is a file-backed recipe repository. The collection it hands out is
// always a deep copy; the stored one changes only through Delete/DeleteAt/Load.
type Store struct {
	mu sync.Mutex

	path     string
	recipes  []domain.Recipe
	modified bool

	subs   map[int]func()
	nextID int

	backups ports.BackupStore
	log     *slog.Logger
}

type Option func(*Store)

// WithBackups copies the previous recipe file into bs before every save.
func WithBackups(bs ports.BackupStore) Option {
	return func(s *Store) { s.backups = bs }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

var _ ports.RecipeStore = (*Store)(nil)

// New validates the backing location up front: the file itself may not exist
// yet, but its directory must, otherwise the store cannot be created.
func New(path string, opts ...Option) (*Store, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return nil, &domain.OpError{
			Op:   "recipestore.new",
			Kind: domain.KindInvalidLocation,
			Err:  errors.New("path is empty"),
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recipestore.new",
			Kind: domain.KindInvalidLocation,
			Path: p,
			Err:  err,
		}
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &domain.OpError{
			Op:   "recipestore.new",
			Kind: domain.KindInvalidLocation,
			Path: abs,
			Err:  fmt.Errorf("directory %q does not exist", dir),
		}
	}

	s := &Store{
		path: abs,
		subs: map[int]func(){},
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the absolute path of the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes)
}

// Modified reports whether the collection has unsaved changes since the last
// load or save.
func (s *Store) Modified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modified
}

// GetAll returns deep copies of every recipe, in current collection order.
func (s *Store) GetAll() []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// GetAt returns a deep copy of the recipe at index.
func (s *Store) GetAt(index int) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.recipes) {
		return domain.Recipe{}, indexErr("recipestore.get_at", index, len(s.recipes))
	}
	return s.recipes[index].Clone(), nil
}

// Delete removes the first recipe structurally equal to rec. Callers usually
// hold a copy from GetAll/GetAt, so matching is by value, not by reference.
// When nothing matches, nothing happens: the modified flag stays put and no
// notification is fired.
func (s *Store) Delete(rec *domain.Recipe) bool {
	if rec == nil {
		return false
	}

	s.mu.Lock()
	idx := -1
	for i := range s.recipes {
		if s.recipes[i].Equal(*rec) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.removeLocked(idx)
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
	return true
}

// DeleteAt removes the recipe at index from the live collection.
func (s *Store) DeleteAt(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.recipes) {
		n := len(s.recipes)
		s.mu.Unlock()
		return indexErr("recipestore.delete_at", index, n)
	}

	s.removeLocked(index)
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
	return nil
}

// Save serializes the collection in its current order and overwrites the
// backing file. On I/O failure the error is logged and returned; the in-memory
// collection and the modified flag are left untouched so the caller can retry.
func (s *Store) Save() error {
	s.mu.Lock()
	text := recipecodec.Serialize(s.recipes)
	path := s.path
	backups := s.backups
	s.mu.Unlock()

	if backups != nil {
		if _, err := backups.SaveBackup(path); err != nil {
			s.log.Warn("recipestore.backup.failed", "path", path, "err", err)
		}
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		s.log.Error("recipestore.save.failed", "path", path, "err", err)
		return &domain.OpError{
			Op:   "recipestore.save",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	s.mu.Lock()
	s.modified = false
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
	return nil
}

// Load parses the backing file into a fresh collection and swaps it in whole.
// On any failure the previously loaded collection survives unchanged.
func (s *Store) Load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error("recipestore.load.failed", "path", s.path, "err", err)
		return &domain.OpError{
			Op:   "recipestore.load",
			Kind: domain.KindIO,
			Path: s.path,
			Err:  err,
		}
	}

	recipes, err := recipecodec.Parse(string(b))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.recipes = recipes
	s.modified = false
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
	return nil
}

// Subscribe registers fn to be called after every successful Load, Save, and
// effective delete. The returned id unregisters it via Unsubscribe.
func (s *Store) Subscribe(fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return id
}

func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func (s *Store) removeLocked(index int) {
	s.recipes = append(s.recipes[:index], s.recipes[index+1:]...)
	s.modified = true
}

// snapshotSubsLocked copies the observer list so an observer unregistering
// during dispatch cannot affect the fan-out in progress.
func (s *Store) snapshotSubsLocked() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func()) {
	for _, fn := range subs {
		if fn != nil {
			fn()
		}
	}
}

func indexErr(op string, index, count int) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindIndexRange,
		Err:  fmt.Errorf("index %d outside [0, %d): %w", index, count, domain.ErrIndexRange),
	}
}
