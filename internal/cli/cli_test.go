package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
)

// --- parseIndex ---

func TestParseIndex(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{" 3 ", 2, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseIndex(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseIndex(%q) expected error", c.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIndex(%q) error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseIndex(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

// --- fileExists ---

func TestFileExists_True(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
}

func TestFileExists_False(t *testing.T) {
	tmp := t.TempDir()
	if fileExists(filepath.Join(tmp, "not_there.txt")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- resolveRecipePath ---

func TestResolveRecipePath(t *testing.T) {
	ws := &workspaceCtx{
		root: "/ws",
		cfg:  domain.DefaultConfig(),
	}

	if got := resolveRecipePath(ws, ""); got != filepath.Join("/ws", "recept.txt") {
		t.Errorf("expected default file, got %q", got)
	}
	if got := resolveRecipePath(ws, "andra.txt"); got != filepath.Join("/ws", "andra.txt") {
		t.Errorf("expected relative path under root, got %q", got)
	}
	if got := resolveRecipePath(ws, "/abs/recept.txt"); got != filepath.Clean("/abs/recept.txt") {
		t.Errorf("expected absolute path kept, got %q", got)
	}
}

// --- summarize / formatRecipe ---

func TestSummarize(t *testing.T) {
	r := domain.Recipe{
		Name:         "Pannkakor",
		Ingredients:  []domain.Ingredient{{Amount: "3", Measure: "dl", Name: "mjölk"}},
		Instructions: []string{"Blanda.", "Stek."},
	}
	got := summarize(r)
	if !strings.Contains(got, "Pannkakor") || !strings.Contains(got, "1 ingredienser") || !strings.Contains(got, "2 steg") {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestFormatRecipe(t *testing.T) {
	r := domain.Recipe{
		Name: "Te",
		Ingredients: []domain.Ingredient{
			{Amount: "1", Measure: "st", Name: "tepåse"},
		},
		Instructions: []string{"Koka vatten.", "Låt dra."},
	}

	out := formatRecipe(r)
	for _, want := range []string{"Te\n", "1 st tepåse", "1. Koka vatten.", "2. Låt dra."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_FlagWins(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("resolveWorkspaceRoot error: %v", err)
	}
	abs, _ := filepath.Abs(tmp)
	if got != abs {
		t.Errorf("expected %q, got %q", abs, got)
	}
}
