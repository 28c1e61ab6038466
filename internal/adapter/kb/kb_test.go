package kb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ragdemo/config"
	"ragdemo/internal/domain"
)

func TestProjectChimera(t *testing.T) {
	kb := ProjectChimera()
	require.Equal(t, 3, kb.Len())

	docs := kb.Documents()
	assert.Equal(t, "doc1", docs[0].ID)
	assert.Equal(t, "Project Chimera Overview", docs[0].Title)
	assert.Equal(t, "Chimera's Neural Interface", docs[1].Title)
	assert.Equal(t, "Applications of Chimera", docs[2].Title)
	assert.Contains(t, docs[1].Content, "biocompatible nanomaterials.")
}

func TestYAMLSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := `
documents:
  - id: a
    title: Alpha
    content: first document
  - id: b
    title: Beta
    content: second document
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	kb, err := NewYAMLSource(path).Load()
	require.NoError(t, err)
	require.Equal(t, 2, kb.Len())

	doc, err := kb.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "Beta", doc.Title)
	assert.Equal(t, "second document", doc.Content)
}

func TestYAMLSource_Duplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := `
documents:
  - id: a
    title: One
  - id: a
    title: Two
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewYAMLSource(path).Load()
	assert.True(t, errors.Is(err, domain.ErrDuplicateDocument), "got %v", err)
}

func TestYAMLSource_Missing(t *testing.T) {
	_, err := NewYAMLSource(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, SaveYAML(path, ProjectChimera()))

	kb, err := NewYAMLSource(path).Load()
	require.NoError(t, err)
	assert.Equal(t, ProjectChimera().Documents(), kb.Documents())
}

func TestDirSource_Load(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"overview.md":      "# Project Chimera Overview\n\nProject Chimera is a research\ninitiative.\n",
		"notes/neural.txt": "\n\nNeural Interface\nA neural interface.",
		"notes/empty.md":   "",
		"ignore.go":        "package main",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	src := NewDirSource(root, []string{"**/*.md", "**/*.txt"}, nil)
	kb, err := src.Load()
	require.NoError(t, err)
	require.Equal(t, 3, kb.Len())

	ids := make([]string, 0, kb.Len())
	for _, d := range kb.Documents() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"notes/empty.md", "notes/neural.txt", "overview.md"}, ids)

	overview, err := kb.Get("overview.md")
	require.NoError(t, err)
	assert.Equal(t, "Project Chimera Overview", overview.Title)
	assert.Equal(t, "Project Chimera is a research initiative.", overview.Content)

	neural, err := kb.Get("notes/neural.txt")
	require.NoError(t, err)
	assert.Equal(t, "Neural Interface", neural.Title)
	assert.Equal(t, "A neural interface.", neural.Content)

	empty, err := kb.Get("notes/empty.md")
	require.NoError(t, err)
	assert.Equal(t, "empty", empty.Title)
	assert.Equal(t, "", empty.Content)
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		cfg      config.KnowledgeConfig
		wantName string
		wantErr  bool
	}{
		{config.KnowledgeConfig{Source: "builtin"}, "builtin:project-chimera", false},
		{config.KnowledgeConfig{}, "builtin:project-chimera", false},
		{config.KnowledgeConfig{Source: "yaml", Path: "kb.yaml"}, "yaml:" + filepath.Join("/base", "kb.yaml"), false},
		{config.KnowledgeConfig{Source: "dir", Path: "/abs/docs"}, "dir:/abs/docs", false},
		{config.KnowledgeConfig{Source: "s3"}, "", true},
	}

	for _, tt := range tests {
		src, err := NewSource(tt.cfg, "/base")
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.wantName, src.Name())
	}
}
