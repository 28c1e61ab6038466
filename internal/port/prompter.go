package port

import "ragdemo/internal/domain"

// PromptBuilder assembles generation prompts.
type PromptBuilder interface {
	BuildNaive(query string) (string, error)

	BuildWithContext(query string, docs []domain.Document) (string, error)
}
