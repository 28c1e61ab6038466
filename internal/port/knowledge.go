package port

import "ragdemo/internal/domain"

// KnowledgeSource produces the knowledge base once at startup.
type KnowledgeSource interface {
	Load() (domain.KnowledgeBase, error)

	// Name describes the source for logs and CLI output.
	Name() string
}
