package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "# A")
	writeFile(t, root, "notes/b.txt", "B")
	writeFile(t, root, "notes/skip.go", "package x")
	writeFile(t, root, "drafts/c.md", "# C")

	w := NewWalker([]string{"**/*.md", "**/*.txt"}, []string{"drafts/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.md", "notes/b.txt"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %+v", len(want), len(files), files)
	}
	for i, rel := range want {
		if files[i].RelPath != rel {
			t.Errorf("file %d: expected %s, got %s", i, rel, files[i].RelPath)
		}
		if !filepath.IsAbs(files[i].Path) {
			t.Errorf("expected absolute path, got %s", files[i].Path)
		}
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x.bin", "x")
	writeFile(t, root, "deep/er/y.md", "y")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for missing root")
	}
}

func TestReader_ReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")

	got, err := NewReader().ReadFile(filepath.Join(root, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}
