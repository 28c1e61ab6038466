package usecase

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"ragdemo/internal/domain"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

const (
	naiveTemplate     = "templates/naive_prompt.txt"
	noContextTemplate = "templates/no_context_prompt.txt"
	contextTemplate   = "templates/context_prompt.txt"
)

// PromptData is the input of every prompt template.
type PromptData struct {
	Query     string
	Documents []domain.Document
}

// PromptUseCase renders generation prompts from the embedded templates.
type PromptUseCase struct {
	templates map[string]*template.Template
}

// NewPromptUseCase parses the embedded prompt templates.
func NewPromptUseCase() (*PromptUseCase, error) {
	u := &PromptUseCase{templates: make(map[string]*template.Template)}
	for _, name := range []string{naiveTemplate, noContextTemplate, contextTemplate} {
		content, err := promptTemplates.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("template not found: %w", err)
		}
		tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		u.templates[name] = tmpl
	}
	return u, nil
}

// BuildNaive renders the no-retrieval baseline prompt.
func (u *PromptUseCase) BuildNaive(query string) (string, error) {
	return u.render(naiveTemplate, PromptData{Query: query})
}

// BuildWithContext renders the RAG prompt. With no documents it falls back to
// the "no relevant information" prompt, which carries no document text.
func (u *PromptUseCase) BuildWithContext(query string, docs []domain.Document) (string, error) {
	if len(docs) == 0 {
		return u.render(noContextTemplate, PromptData{Query: query})
	}
	return u.render(contextTemplate, PromptData{Query: query, Documents: docs})
}

func (u *PromptUseCase) render(name string, data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := u.templates[name].Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	// template files end with a newline that is not part of the prompt
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatContext": FormatContext,
	}
}

// FormatContext renders one "- <title>: <content>" line per document.
func FormatContext(docs []domain.Document) string {
	lines := make([]string, len(docs))
	for i, d := range docs {
		lines[i] = fmt.Sprintf("- %s: %s", d.Title, d.Content)
	}
	return strings.Join(lines, "\n")
}
