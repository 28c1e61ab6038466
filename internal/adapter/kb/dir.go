package kb

import (
	"fmt"
	"path"
	"strings"

	"ragdemo/internal/adapter/fs"
	"ragdemo/internal/domain"
	"ragdemo/internal/port"
)

// DirSource turns every matching file under root into one document. The id is
// the slash path relative to root, the title is the first non-empty line
// (markdown heading markers stripped) and the content is the rest.
type DirSource struct {
	root   string
	walker port.FileWalker
	reader port.FileReader
}

func NewDirSource(root string, includes, excludes []string) *DirSource {
	return &DirSource{
		root:   root,
		walker: fs.NewWalker(includes, excludes),
		reader: &fileReader{text: fs.NewReader()},
	}
}

func (s *DirSource) Load() (domain.KnowledgeBase, error) {
	files, err := s.walker.Walk(s.root)
	if err != nil {
		return domain.KnowledgeBase{}, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}

	docs := make([]domain.Document, 0, len(files))
	for _, f := range files {
		text, err := s.reader.ReadFile(f.Path)
		if err != nil {
			return domain.KnowledgeBase{}, fmt.Errorf("failed to read %s: %w", f.RelPath, err)
		}
		docs = append(docs, parseDocument(f.RelPath, text))
	}

	return domain.NewKnowledgeBase(docs...)
}

func (s *DirSource) Name() string {
	return "dir:" + s.root
}

func parseDocument(relPath, text string) domain.Document {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	title := ""
	rest := lines
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		rest = lines[i+1:]
		break
	}
	if title == "" {
		base := path.Base(relPath)
		title = strings.TrimSuffix(base, path.Ext(base))
	}

	return domain.Document{
		ID:      relPath,
		Title:   title,
		Content: strings.Join(strings.Fields(strings.Join(rest, "\n")), " "),
	}
}

// fileReader dispatches PDFs to the PDF extractor and reads everything else
// as text.
type fileReader struct {
	text port.FileReader
}

func (r *fileReader) ReadFile(p string) (string, error) {
	if strings.EqualFold(path.Ext(p), ".pdf") {
		return ExtractPDFText(p)
	}
	return r.text.ReadFile(p)
}
