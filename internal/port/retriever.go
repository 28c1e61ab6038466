package port

import "ragdemo/internal/domain"

// Retriever ranks knowledge-base documents against a query.
type Retriever interface {
	// Rank returns every document scoring at least minScore, best first.
	Rank(query string, kb domain.KnowledgeBase, minScore int) ([]domain.ScoredDocument, error)
}
