package usecase

import (
	"ragdemo/internal/adapter/retriever"
	"ragdemo/internal/domain"
	"ragdemo/internal/port"
)

// RetrieveUseCase handles search over a fixed knowledge base.
type RetrieveUseCase struct {
	retriever    port.Retriever
	kb           domain.KnowledgeBase
	minScore     int
	maxDocuments int // 0 = no limit
}

// NewRetrieveUseCase creates a new retrieve use case.
func NewRetrieveUseCase(
	retriever port.Retriever,
	kb domain.KnowledgeBase,
	minScore int,
	maxDocuments int,
) *RetrieveUseCase {
	return &RetrieveUseCase{
		retriever:    retriever,
		kb:           kb,
		minScore:     minScore,
		maxDocuments: maxDocuments,
	}
}

// Retrieve returns the documents relevant to query, best first.
func (u *RetrieveUseCase) Retrieve(query string) ([]domain.Document, error) {
	ranked, err := u.Rank(query)
	if err != nil {
		return nil, err
	}
	return retriever.Documents(ranked), nil
}

// Rank is Retrieve with scores, using the configured minimum score.
func (u *RetrieveUseCase) Rank(query string) ([]domain.ScoredDocument, error) {
	return u.RankWithMinScore(query, u.minScore)
}

// RankWithMinScore overrides the configured minimum score for one call.
func (u *RetrieveUseCase) RankWithMinScore(query string, minScore int) ([]domain.ScoredDocument, error) {
	ranked, err := u.retriever.Rank(query, u.kb, minScore)
	if err != nil {
		return nil, err
	}
	if u.maxDocuments > 0 && len(ranked) > u.maxDocuments {
		ranked = ranked[:u.maxDocuments]
	}
	return ranked, nil
}

// KnowledgeBase returns the knowledge base being searched.
func (u *RetrieveUseCase) KnowledgeBase() domain.KnowledgeBase {
	return u.kb
}

func (u *RetrieveUseCase) MinScore() int {
	return u.minScore
}
