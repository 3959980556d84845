package recipestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
)

const bookText = `[Recept]
Våfflor
[Ingredienser]
2;dl;vetemjöl
[Instruktioner]
Vispa.
Grädda.
[Recept]
Pannkakor
[Ingredienser]
3;dl;mjölk
2;st;ägg
[Instruktioner]
Blanda allt.
Stek i smör.
`

func newLoadedStore(t *testing.T) *Store {
	t.Helper()

	tmp := t.TempDir()
	p := filepath.Join(tmp, "recept.txt")
	if err := os.WriteFile(p, []byte(bookText), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := New(p)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return s
}

func TestNew_InvalidLocation(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"empty path", "   "},
		{"missing directory", filepath.Join(t.TempDir(), "no", "such", "dir", "recept.txt")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidLocation) {
				t.Fatalf("expected KindInvalidLocation, got: %v", err)
			}
		})
	}
}

func TestLoad_SortsAndResetsModified(t *testing.T) {
	s := newLoadedStore(t)

	if s.Count() != 2 {
		t.Fatalf("expected 2 recipes, got %d", s.Count())
	}
	if s.Modified() {
		t.Fatalf("expected modified=false after load")
	}

	all := s.GetAll()
	if all[0].Name != "Pannkakor" || all[1].Name != "Våfflor" {
		t.Fatalf("expected sorted collection, got %q, %q", all[0].Name, all[1].Name)
	}
}

func TestGetAll_ReturnsDeepCopies(t *testing.T) {
	s := newLoadedStore(t)

	all := s.GetAll()
	all[0].Name = "ändrad"
	all[0].Ingredients[0].Name = "vatten"
	all[0].Instructions[0] = "Gör inget."

	fresh := s.GetAll()
	if fresh[0].Name != "Pannkakor" {
		t.Fatalf("mutation of GetAll result leaked into store: %q", fresh[0].Name)
	}
	if fresh[0].Ingredients[0].Name != "mjölk" {
		t.Fatalf("ingredient mutation leaked: %+v", fresh[0].Ingredients[0])
	}
	if fresh[0].Instructions[0] != "Blanda allt." {
		t.Fatalf("instruction mutation leaked: %q", fresh[0].Instructions[0])
	}
}

func TestGetAt_BoundsAndCopy(t *testing.T) {
	s := newLoadedStore(t)

	for _, idx := range []int{-1, s.Count()} {
		_, err := s.GetAt(idx)
		if err == nil {
			t.Fatalf("expected error for index %d", idx)
		}
		if !domain.IsKind(err, domain.KindIndexRange) {
			t.Fatalf("expected KindIndexRange, got: %v", err)
		}
	}

	r, err := s.GetAt(0)
	if err != nil {
		t.Fatalf("GetAt error: %v", err)
	}
	r.Ingredients[0].Name = "vatten"

	again, _ := s.GetAt(0)
	if again.Ingredients[0].Name != "mjölk" {
		t.Fatalf("GetAt returned a shared instance")
	}
}

func TestDelete_ByCopyRemovesOriginal(t *testing.T) {
	s := newLoadedStore(t)

	fired := 0
	s.Subscribe(func() { fired++ })

	cp, err := s.GetAt(0)
	if err != nil {
		t.Fatalf("GetAt error: %v", err)
	}

	if !s.Delete(&cp) {
		t.Fatalf("expected delete to remove the structural match")
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 recipe left, got %d", s.Count())
	}
	if !s.Modified() {
		t.Fatalf("expected modified=true after delete")
	}
	if fired != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", fired)
	}
	if s.GetAll()[0].Name != "Våfflor" {
		t.Fatalf("wrong recipe removed")
	}
}

func TestDelete_NoMatchIsSilentNoop(t *testing.T) {
	s := newLoadedStore(t)

	fired := 0
	s.Subscribe(func() { fired++ })

	ghost := domain.Recipe{Name: "Finns inte"}
	if s.Delete(&ghost) {
		t.Fatalf("expected no removal")
	}
	if s.Modified() {
		t.Fatalf("expected modified flag untouched by no-op delete")
	}
	if fired != 0 {
		t.Fatalf("expected no notification, got %d", fired)
	}
	if s.Count() != 2 {
		t.Fatalf("expected collection unchanged")
	}
}

func TestDelete_NilIsNoop(t *testing.T) {
	s := newLoadedStore(t)
	if s.Delete(nil) {
		t.Fatalf("expected nil delete to be a no-op")
	}
	if s.Count() != 2 || s.Modified() {
		t.Fatalf("expected state unchanged")
	}
}

func TestDeleteAt_Bounds(t *testing.T) {
	s := newLoadedStore(t)

	for _, idx := range []int{-1, 2} {
		err := s.DeleteAt(idx)
		if !domain.IsKind(err, domain.KindIndexRange) {
			t.Fatalf("expected KindIndexRange for %d, got: %v", idx, err)
		}
	}

	if err := s.DeleteAt(1); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if s.Count() != 1 || s.GetAll()[0].Name != "Pannkakor" {
		t.Fatalf("expected Våfflor removed, got %+v", s.GetAll())
	}
}

func TestSave_ResetsModifiedAndNotifies(t *testing.T) {
	s := newLoadedStore(t)

	fired := 0
	s.Subscribe(func() { fired++ })

	if err := s.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if s.Modified() {
		t.Fatalf("expected modified=false after save")
	}
	if fired != 2 {
		t.Fatalf("expected 2 notifications (delete+save), got %d", fired)
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	s := newLoadedStore(t)

	before := s.GetAll()
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	after := s.GetAll()
	if len(after) != len(before) {
		t.Fatalf("expected %d recipes, got %d", len(before), len(after))
	}
	for i := range before {
		if !after[i].Equal(before[i]) {
			t.Fatalf("round-trip mismatch at %d:\nwant %+v\ngot  %+v", i, before[i], after[i])
		}
	}
}

func TestLoad_FormatErrorKeepsOldCollection(t *testing.T) {
	s := newLoadedStore(t)

	if err := os.WriteFile(s.Path(), []byte("[Recept]\nx\n[Ingredienser]\n2;dl\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := s.Load()
	if !domain.IsKind(err, domain.KindFormat) {
		t.Fatalf("expected KindFormat, got: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("expected previous collection preserved, got %d recipes", s.Count())
	}
	if s.Modified() {
		t.Fatalf("expected modified flag untouched by failed load")
	}
}

func TestLoad_MissingFileIsIOError(t *testing.T) {
	tmp := t.TempDir()
	s, err := New(filepath.Join(tmp, "recept.txt"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	loadErr := s.Load()
	if !domain.IsKind(loadErr, domain.KindIO) {
		t.Fatalf("expected KindIO, got: %v", loadErr)
	}
}

func TestSave_IOErrorKeepsState(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "book")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(dir, "recept.txt")
	if err := os.WriteFile(p, []byte(bookText), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := New(p)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := s.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}

	// Make the target directory vanish so the write fails.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("remove dir: %v", err)
	}

	fired := 0
	s.Subscribe(func() { fired++ })

	saveErr := s.Save()
	if !domain.IsKind(saveErr, domain.KindIO) {
		t.Fatalf("expected KindIO, got: %v", saveErr)
	}
	if !s.Modified() {
		t.Fatalf("expected modified flag preserved after failed save")
	}
	if s.Count() != 1 {
		t.Fatalf("expected collection preserved after failed save")
	}
	if fired != 0 {
		t.Fatalf("expected no notification on failed save")
	}
}

func TestUnsubscribeDuringDispatchIsSafe(t *testing.T) {
	s := newLoadedStore(t)

	var id1 int
	fired1, fired2 := 0, 0
	id1 = s.Subscribe(func() {
		fired1++
		s.Unsubscribe(id1)
	})
	s.Subscribe(func() { fired2++ })

	if err := s.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if err := s.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}

	if fired1 != 1 {
		t.Fatalf("expected unregistered observer to fire once, got %d", fired1)
	}
	if fired2 != 2 {
		t.Fatalf("expected remaining observer to fire twice, got %d", fired2)
	}
}
