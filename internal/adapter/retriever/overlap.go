package retriever

import (
	"fmt"
	"sort"

	"ragdemo/internal/adapter/analyzer"
	"ragdemo/internal/domain"
	"ragdemo/internal/port"
)

// TitleWeight multiplies title overlap relative to content overlap.
const TitleWeight = 2

// DefaultMinScore keeps any document sharing at least one word with the query.
const DefaultMinScore = 1

type OverlapRetriever struct {
	tokenizer port.Tokenizer
}

func NewOverlapRetriever(tokenizer port.Tokenizer) *OverlapRetriever {
	if tokenizer == nil {
		tokenizer = analyzer.NewTokenizer()
	}
	return &OverlapRetriever{tokenizer: tokenizer}
}

// Rank scores every document in kb against query and returns those at or
// above minScore, highest score first. Equal scores keep knowledge-base order.
func (r *OverlapRetriever) Rank(query string, kb domain.KnowledgeBase, minScore int) ([]domain.ScoredDocument, error) {
	if minScore < 0 {
		return nil, fmt.Errorf("%w: min score must be >= 0, got %d", domain.ErrInvalidArgument, minScore)
	}

	queryWords := r.tokenizer.WordSet(query)

	results := make([]domain.ScoredDocument, 0, kb.Len())
	kb.Each(func(doc domain.Document) {
		score := r.score(queryWords, doc)
		if score >= minScore {
			results = append(results, domain.ScoredDocument{
				Document: doc,
				Score:    score,
			})
		}
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// Retrieve is Rank without the scores.
func (r *OverlapRetriever) Retrieve(query string, kb domain.KnowledgeBase, minScore int) ([]domain.Document, error) {
	ranked, err := r.Rank(query, kb, minScore)
	if err != nil {
		return nil, err
	}
	return Documents(ranked), nil
}

// Score computes the overlap score of a single document.
func (r *OverlapRetriever) Score(query string, doc domain.Document) int {
	return r.score(r.tokenizer.WordSet(query), doc)
}

// Explain returns the two overlap counts behind Score, before weighting.
func (r *OverlapRetriever) Explain(query string, doc domain.Document) (contentOverlap, titleOverlap int) {
	return r.overlaps(r.tokenizer.WordSet(query), doc)
}

func (r *OverlapRetriever) score(queryWords map[string]struct{}, doc domain.Document) int {
	contentOverlap, titleOverlap := r.overlaps(queryWords, doc)
	return contentOverlap + TitleWeight*titleOverlap
}

func (r *OverlapRetriever) overlaps(queryWords map[string]struct{}, doc domain.Document) (int, int) {
	return analyzer.Overlap(queryWords, r.tokenizer.WordSet(doc.Content)),
		analyzer.Overlap(queryWords, r.tokenizer.WordSet(doc.Title))
}

// Documents drops the scores, keeping order.
func Documents(ranked []domain.ScoredDocument) []domain.Document {
	docs := make([]domain.Document, len(ranked))
	for i, sd := range ranked {
		docs[i] = sd.Document
	}
	return docs
}
