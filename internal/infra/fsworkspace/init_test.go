package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "recept.yaml"))
	assertFileExists(t, filepath.Join(tmp, "recept.txt"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	for _, d := range []string{"backups", filepath.Join(".recept", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestInitializer_Init_SampleFileParses(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "recept.txt"))
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(b), "[Recept]") {
		t.Fatalf("expected sample recipe file content, got:\n%s", b)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	receptYAML := filepath.Join(tmp, "recept.yaml")
	if err := os.WriteFile(receptYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing recept.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(receptYAML)
	if err != nil {
		t.Fatalf("read recept.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected recept.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(receptYAML)
	if err != nil {
		t.Fatalf("read recept.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "recept:") {
		t.Fatalf("expected recept.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
